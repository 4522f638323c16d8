package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"openlibrary-fetcher/internal/version"
)

//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Version information does not depend on the configuration file.
	PersistentPreRun: func(_ *cobra.Command, _ []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		short, _ := cmd.Flags().GetBool("short")
		if short {
			fmt.Println(version.Short())

			return
		}

		fmt.Println(version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number.")

	rootCmd.AddCommand(versionCmd)
}
