package main

import (
	"fmt"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/editor"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/hostinfo"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/language"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/tracker"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a file once and report its estimated emissions",
	Long: `Run a file with the interpreter for its language and print one message:
a trackingResults report, or an error if the file could not be tracked.

The language defaults to a guess from the file extension:
  .py          python    (python <file>)
  .js .mjs     javascript (node <file>)
  .ts .mts     typescript (npx ts-node <file>)`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringP("language", "l", "", "Editor language id: python, javascript or typescript (default: from the extension)")
	runCmd.Flags().StringP("format", "f", "json", "Output format: json or text")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	languageId, _ := cmd.Flags().GetString("language")
	format, _ := cmd.Flags().GetString("format")

	var notifier tracker.Notifier
	switch format {
	case "json":
		notifier = tracker.NewJSONLinesNotifier(cmd.OutOrStdout())
	case "text":
		notifier = tracker.NewTextNotifier(cmd.OutOrStdout())
	default:
		return fmt.Errorf("Invalid format %q: use json or text", format)
	}

	if languageId == "" {
		languageId = language.FromExtension(args[0])
	}

	t := tracker.New(notifier, hostinfo.NewSystem())
	message := t.Track(cmd.Context(), &editor.Static{
		Document: &entities.Document{
			Path:       args[0],
			LanguageId: languageId,
		},
		WorkspaceRoot: config.WorkspaceRoot,
	})
	if message.IsError() {
		return errReported
	}

	return nil
}
