package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/hostinfo"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const maxMessageSize = 1024 * 1024

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tracking requests as JSON lines on stdin and stdout",
	Long: `Read one JSON message per line from stdin and write one JSON message per
line to stdout.

Inbound:
  {"type":"startTracking","document":{"path":"/abs/main.py","languageId":"python"}}
  A request without a document means no file is open in the editor.

Outbound:
  {"type":"trackingResults","data":{...}}
  {"type":"error","message":"..."}

Only one file is tracked at a time. A startTracking that arrives while a
file is still running is answered with an error.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	notifier := tracker.NewJSONLinesNotifier(cmd.OutOrStdout())
	t := tracker.New(notifier, hostinfo.NewSystem(), tracker.WithWorkspaceRoot(config.WorkspaceRoot))
	defer t.Wait()

	logrus.Info("Waiting for tracking requests")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			logrus.WithError(err).Debug("Error unmarshalling the inbound message")
			if err := notifier.Notify(tracker.BuildError(fmt.Sprintf("Invalid message: %s", err))); err != nil {
				return err
			}
			continue
		}

		t.Dispatch(cmd.Context(), payload)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("Error reading from stdin: %w", err)
	}
	return nil
}
