package cmd

import (
	"github.com/spf13/cobra"

	"openlibrary-fetcher/internal/app"
)

var (
	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	bookCmd = &cobra.Command{
		Use:   "book {olid}",
		Short: "Fetch an edition record by its OLID",
		Long: `Fetch a single edition record by its Open Library ID, e.g.:

openlibrary-fetcher book OL7353617M`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteBookCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	workCmd = &cobra.Command{
		Use:   "work {olid}",
		Short: "Fetch a work record by its OLID",
		Long: `Fetch a single work record by its Open Library ID, e.g.:

openlibrary-fetcher work OL45883W`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteWorkCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	authorCmd = &cobra.Command{
		Use:   "author {olid}",
		Short: "Fetch an author record by its OLID",
		Long: `Fetch a single author record by its Open Library ID, e.g.:

openlibrary-fetcher author OL34184A`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteAuthorCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	worksCmd = &cobra.Command{
		Use:   "works {author-olid}",
		Short: "List the works of an author",
		Long: `List the works of an author page by page, e.g.:

openlibrary-fetcher works OL34184A --page 2`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			page, _ := cmd.Flags().GetInt("page")
			app.ExecuteAuthorWorksCommand(cmd.Context(), appConfig, args[0], page)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra commands require global definitions for proper command-line parsing and execution.
	isbnCmd = &cobra.Command{
		Use:   "isbn {isbn}",
		Short: "Fetch an edition record by its ISBN",
		Long: `Fetch the edition record behind an ISBN-10 or ISBN-13, e.g.:

openlibrary-fetcher isbn 9780140328721`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteISBNCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	worksCmd.Flags().IntP("page", "p", 1, "1-based page number.")

	rootCmd.AddCommand(bookCmd, workCmd, authorCmd, worksCmd, isbnCmd)
}
