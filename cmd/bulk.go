package cmd

import (
	"github.com/spf13/cobra"

	"openlibrary-fetcher/internal/app"
)

//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
var bulkCmd = &cobra.Command{
	Use:   "bulk {identifiers or files}",
	Short: "Fetch a mixed list of identifiers in one session",
	Long: `Fetch a mixed list of identifiers in one session and print a summary.

Identifiers may be OLIDs (OL7353617M), ISBNs (9780140328721), prefixed
bibliographic keys (ISBN:..., LCCN:..., OCLC:..., OLID:...), or .txt files
listing one identifier per line. ISBN, LCCN, and OCLC keys are fetched
together in a single batched request. Lines starting with '#' are ignored.

Example:

openlibrary-fetcher bulk OL7353617M 9780140328721 LCCN:93005405 reading-list.txt`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app.ExecuteBulkCommand(cmd.Context(), appConfig, args)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(bulkCmd)
}
