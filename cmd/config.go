package cmd

import (
	"github.com/spf13/cobra"

	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/logger"
)

var (
	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long: `Manage the configuration file.

Use 'config init' to write a configuration file populated with the defaults.`,
	}

	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Long: `Write a configuration file populated with the default settings.

The file is written to the path given with --config, or to '` + config.DefaultConfigFilename + `'
in the current directory. An existing file is never overwritten.`,
		// The config file may not exist yet, so the usual loading step is skipped.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			target := configFilenameFromFlag
			if target == "" {
				target = config.DefaultConfigFilename
			}

			if err := config.SaveDefaultConfig(configFilenameFromFlag); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to write configuration file: %v", err)
			}

			logger.Infof(cmd.Context(), "Wrote configuration file: %s", target)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
