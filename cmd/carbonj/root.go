package main

import (
	"errors"
	"os"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/utils"
	"github.com/spf13/cobra"
)

// errReported means the failure was already delivered as an error message on stdout.
var errReported = errors.New("Tracking failed")

var config = entities.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "carbonj",
	Short: "Estimate the energy use and carbon emissions of running a file",
	Long: `carbonj - Run a Python, JavaScript or TypeScript file, time it and estimate
the energy it used and the CO2 that energy emitted.

The estimate assumes a constant 100 W power draw and a grid carbon
intensity of 0.475 kgCO2/kWh. It is a rough figure, not a measurement.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a yaml config file (default: $CARBONJ_CONFIG)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level, overrides the config file")
	rootCmd.PersistentFlags().String("workspace-root", "", "Directory relative file paths are resolved in, overrides the config file")
}

func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CARBONJ_CONFIG")
	}

	loaded, err := utils.LoadConfig(path)
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		loaded.LogLevel = level
	}
	if root, _ := cmd.Flags().GetString("workspace-root"); root != "" {
		loaded.WorkspaceRoot = root
	}

	if err := utils.SetupLogging(loaded); err != nil {
		return err
	}

	config = loaded
	return nil
}
