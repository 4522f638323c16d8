package app

import (
	"context"
	"os"

	openlibrary_client "openlibrary-fetcher/internal/client/openlibrary"
	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/logger"
	library_service "openlibrary-fetcher/internal/service/library"
)

// newLibraryService assembles the fetch service with all of its components.
func newLibraryService(ctx context.Context, cfg *config.Config) library_service.Service {
	libraryClient, err := openlibrary_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Open Library client: %v", err)
	}

	identifierProcessor := library_service.NewIdentifierProcessor()
	renderer := library_service.NewRenderer(cfg, os.Stdout)

	return library_service.NewService(cfg, libraryClient, identifierProcessor, renderer)
}

// ExecuteBulkCommand is the entry point for the bulk fetch command.
// It classifies the supplied identifiers, fetches every record, and prints a session summary.
func ExecuteBulkCommand(ctx context.Context, cfg *config.Config, identifiers []string) {
	s := newLibraryService(ctx, cfg)

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintFetchSummary(ctx)
	}()

	if err := s.FetchIdentifiers(ctx, identifiers); err != nil {
		logger.Errorf(ctx, "Failed to fetch identifiers: %v", err)
	}
}

// ExecuteBookCommand is the entry point for the edition lookup command.
func ExecuteBookCommand(ctx context.Context, cfg *config.Config, olid string) {
	if err := newLibraryService(ctx, cfg).LookupBook(ctx, olid); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}

// ExecuteWorkCommand is the entry point for the work lookup command.
func ExecuteWorkCommand(ctx context.Context, cfg *config.Config, olid string) {
	if err := newLibraryService(ctx, cfg).LookupWork(ctx, olid); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}

// ExecuteAuthorCommand is the entry point for the author lookup command.
func ExecuteAuthorCommand(ctx context.Context, cfg *config.Config, olid string) {
	if err := newLibraryService(ctx, cfg).LookupAuthor(ctx, olid); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}

// ExecuteAuthorWorksCommand is the entry point for the author works listing command.
func ExecuteAuthorWorksCommand(ctx context.Context, cfg *config.Config, olid string, page int) {
	if err := newLibraryService(ctx, cfg).LookupAuthorWorks(ctx, olid, page); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}

// ExecuteISBNCommand is the entry point for the ISBN lookup command.
func ExecuteISBNCommand(ctx context.Context, cfg *config.Config, isbn string) {
	if err := newLibraryService(ctx, cfg).LookupISBN(ctx, isbn); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}

// ExecuteSearchCommand is the entry point for the book search command.
func ExecuteSearchCommand(
	ctx context.Context,
	cfg *config.Config,
	params *openlibrary_client.SearchBooksParams,
) {
	if err := newLibraryService(ctx, cfg).SearchBooks(ctx, params); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}

// ExecuteSearchAuthorsCommand is the entry point for the author search command.
func ExecuteSearchAuthorsCommand(ctx context.Context, cfg *config.Config, query string, page int) {
	if err := newLibraryService(ctx, cfg).SearchAuthors(ctx, query, page); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}

// ExecuteSubjectCommand is the entry point for the subject browsing command.
func ExecuteSubjectCommand(ctx context.Context, cfg *config.Config, subject string, page int) {
	if err := newLibraryService(ctx, cfg).BrowseSubject(ctx, subject, page); err != nil {
		logger.Errorf(ctx, "%v", err)
	}
}
