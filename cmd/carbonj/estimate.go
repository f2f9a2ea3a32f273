package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/emission"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <duration-ms>",
	Short: "Print the emission estimate for a run of the given duration",
	Args:  cobra.ExactArgs(1),
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	durationMs, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || durationMs < 0 {
		return fmt.Errorf("Invalid duration %q: expected a non-negative number of milliseconds", args[0])
	}

	output, err := json.Marshal(emission.Estimate(durationMs))
	if err != nil {
		return fmt.Errorf("Error marshalling the estimate: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
