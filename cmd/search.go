package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"openlibrary-fetcher/internal/app"
	"openlibrary-fetcher/internal/client/openlibrary"
)

var (
	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	searchCmd = &cobra.Command{
		Use:   "search {query}",
		Short: "Search the catalog for books",
		Long: `Search the catalog for books matching a query, e.g.:

openlibrary-fetcher search "fantastic mr fox" --sort new --lang en`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			page, _ := flags.GetInt("page")
			fields, _ := flags.GetStringSlice("fields")
			sortOrder, _ := flags.GetString("sort")
			language, _ := flags.GetString("lang")

			params := &openlibrary.SearchBooksParams{
				Query:    strings.Join(args, " "),
				Page:     page,
				Fields:   fields,
				Sort:     sortOrder,
				Language: language,
			}

			app.ExecuteSearchCommand(cmd.Context(), appConfig, params)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	searchAuthorsCmd = &cobra.Command{
		Use:   "search-authors {query}",
		Short: "Search the catalog for authors",
		Long: `Search the catalog for authors matching a query, e.g.:

openlibrary-fetcher search-authors "roald dahl"`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			page, _ := cmd.Flags().GetInt("page")
			app.ExecuteSearchAuthorsCommand(cmd.Context(), appConfig, strings.Join(args, " "), page)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	subjectCmd = &cobra.Command{
		Use:   "subject {name}",
		Short: "List the works under a subject heading",
		Long: `List the works filed under a subject heading page by page, e.g.:

openlibrary-fetcher subject fantasy --page 3`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			page, _ := cmd.Flags().GetInt("page")
			app.ExecuteSubjectCommand(cmd.Context(), appConfig, args[0], page)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	searchCmd.Flags().IntP("page", "p", 1, "1-based page number.")
	searchCmd.Flags().StringSlice("fields", nil, "restrict returned document fields, e.g. key,title,author_name.")
	searchCmd.Flags().String("sort", "", "sort order: new, old, rating, or empty for relevance.")
	searchCmd.Flags().String("lang", "", "ISO 639-1 language code to boost results in.")

	searchAuthorsCmd.Flags().IntP("page", "p", 1, "1-based page number.")
	subjectCmd.Flags().IntP("page", "p", 1, "1-based page number.")

	rootCmd.AddCommand(searchCmd, searchAuthorsCmd, subjectCmd)
}
