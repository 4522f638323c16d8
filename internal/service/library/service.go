package library

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"sync"
	"time"

	"openlibrary-fetcher/internal/client/openlibrary"
	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/utils"
)

// Service provides methods for fetching and rendering Open Library records.
type Service interface {
	// FetchIdentifiers fetches every supplied identifier, rendering each result as it arrives.
	// Identifiers may be OLIDs, ISBNs, prefixed bibliographic keys, or .txt files listing them.
	FetchIdentifiers(ctx context.Context, identifiers []string) error
	// LookupBook fetches a single edition record by its OLID.
	LookupBook(ctx context.Context, olid string) error
	// LookupWork fetches a single work record by its OLID.
	LookupWork(ctx context.Context, olid string) error
	// LookupAuthor fetches a single author record by its OLID.
	LookupAuthor(ctx context.Context, olid string) error
	// LookupAuthorWorks fetches a page of an author's works.
	LookupAuthorWorks(ctx context.Context, olid string, page int) error
	// LookupISBN fetches the edition record behind an ISBN.
	LookupISBN(ctx context.Context, isbn string) error
	// LookupBibkeys fetches records for a set of bibliographic keys in one request.
	LookupBibkeys(ctx context.Context, bibkeys []string) error
	// SearchBooks searches the catalog for books.
	SearchBooks(ctx context.Context, params *openlibrary.SearchBooksParams) error
	// SearchAuthors searches the catalog for authors.
	SearchAuthors(ctx context.Context, query string, page int) error
	// BrowseSubject fetches a page of works under a subject heading.
	BrowseSubject(ctx context.Context, subject string, page int) error
	// PrintFetchSummary prints a formatted summary of fetch statistics.
	PrintFetchSummary(ctx context.Context)
}

// ServiceImpl implements the record fetching service with
// identifier classification, rendering, and statistics.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// libraryClient is the client for interacting with the Open Library API.
	libraryClient openlibrary.Client
	// identifierProcessor handles identifier parsing and categorization.
	identifierProcessor IdentifierProcessor
	// renderer writes fetched records to the output stream.
	renderer *Renderer
	// stats tracks fetch statistics for the current session.
	stats *FetchStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a fetch service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	libraryClient openlibrary.Client,
	identifierProcessor IdentifierProcessor,
	renderer *Renderer,
) Service {
	return &ServiceImpl{
		cfg:                 cfg,
		libraryClient:       libraryClient,
		identifierProcessor: identifierProcessor,
		renderer:            renderer,
		stats:               new(FetchStatistics),
		statsMutex:          new(sync.Mutex),
	}
}

// perPage returns the configured page size.
func (s *ServiceImpl) perPage() int {
	return utils.SafeInt64ToInt(s.cfg.PerPage)
}

// LookupBook fetches a single edition record by its OLID.
func (s *ServiceImpl) LookupBook(ctx context.Context, olid string) error {
	result, err := s.libraryClient.GetBook(ctx, olid)
	if err != nil {
		return s.recordFailure(LookupCategoryEdition, olid, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderEditions(result, "Edition "+olid)
}

// LookupWork fetches a single work record by its OLID.
func (s *ServiceImpl) LookupWork(ctx context.Context, olid string) error {
	result, err := s.libraryClient.GetWork(ctx, olid)
	if err != nil {
		return s.recordFailure(LookupCategoryWork, olid, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderWorks(result, "Work "+olid)
}

// LookupAuthor fetches a single author record by its OLID.
func (s *ServiceImpl) LookupAuthor(ctx context.Context, olid string) error {
	result, err := s.libraryClient.GetAuthor(ctx, olid)
	if err != nil {
		return s.recordFailure(LookupCategoryAuthor, olid, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderAuthors(result, "Author "+olid)
}

// LookupAuthorWorks fetches a page of an author's works.
func (s *ServiceImpl) LookupAuthorWorks(ctx context.Context, olid string, page int) error {
	result, err := s.libraryClient.GetAuthorWorks(ctx, olid, page, s.perPage())
	if err != nil {
		return s.recordFailure(LookupCategoryAuthor, olid, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderWorks(result, "Works of "+olid)
}

// LookupISBN fetches the edition record behind an ISBN.
func (s *ServiceImpl) LookupISBN(ctx context.Context, isbn string) error {
	result, err := s.libraryClient.GetBookByISBN(ctx, isbn)
	if err != nil {
		return s.recordFailure(LookupCategoryISBN, isbn, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderEditions(result, "ISBN "+isbn)
}

// LookupBibkeys fetches records for a set of bibliographic keys in one request.
func (s *ServiceImpl) LookupBibkeys(ctx context.Context, bibkeys []string) error {
	result, err := s.libraryClient.GetBooksByBibkeys(ctx, bibkeys)
	if err != nil {
		return s.recordFailures(LookupCategoryISBN, bibkeys, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderBibkeyRecords(result, "Bibliographic keys")
}

// SearchBooks searches the catalog for books.
func (s *ServiceImpl) SearchBooks(ctx context.Context, params *openlibrary.SearchBooksParams) error {
	if params.PerPage == 0 {
		params.PerPage = s.perPage()
	}

	result, err := s.libraryClient.SearchBooks(ctx, params)
	if err != nil {
		return s.recordFailure(LookupCategoryWork, params.Query, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderBookDocs(result, fmt.Sprintf("Search %q", params.Query))
}

// SearchAuthors searches the catalog for authors.
func (s *ServiceImpl) SearchAuthors(ctx context.Context, query string, page int) error {
	result, err := s.libraryClient.SearchAuthors(ctx, query, page, s.perPage())
	if err != nil {
		return s.recordFailure(LookupCategoryAuthor, query, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderAuthorDocs(result, fmt.Sprintf("Author search %q", query))
}

// BrowseSubject fetches a page of works under a subject heading.
func (s *ServiceImpl) BrowseSubject(ctx context.Context, subject string, page int) error {
	result, err := s.libraryClient.GetSubject(ctx, subject, page, s.perPage())
	if err != nil {
		return s.recordFailure(LookupCategoryWork, subject, err)
	}

	s.recordFetched(int64(len(result.Items)))

	return s.renderer.RenderSubjectWorks(result, "Subject "+subject)
}

// recordFetched adds successfully fetched records to the statistics.
func (s *ServiceImpl) recordFetched(count int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.RecordsFetched += count
}

// recordFailure records a failed lookup and returns a wrapped error.
func (s *ServiceImpl) recordFailure(category LookupCategory, identifier string, err error) error {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.LookupsFailed++
	s.stats.Errors = append(s.stats.Errors, FetchError{
		Category:     category,
		Identifier:   identifier,
		ErrorMessage: err.Error(),
	})

	return fmt.Errorf("failed to fetch %s '%s': %w", category, identifier, err)
}

// recordFailures records one failure per bibliographic key of a failed batch lookup.
func (s *ServiceImpl) recordFailures(category LookupCategory, identifiers []string, err error) error {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.LookupsFailed += int64(len(identifiers))
	for _, identifier := range identifiers {
		s.stats.Errors = append(s.stats.Errors, FetchError{
			Category:     category,
			Identifier:   identifier,
			ErrorMessage: err.Error(),
		})
	}

	return fmt.Errorf("failed to fetch %d bibliographic key(s): %w", len(identifiers), err)
}

// recordSkipped counts identifiers that matched no known format.
func (s *ServiceImpl) recordSkipped(count int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.IdentifiersSkipped += count
}

// markSessionStart records the start time of the fetch session.
func (s *ServiceImpl) markSessionStart() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.StartTime = time.Now()
}

// markSessionEnd records the end time of the fetch session.
func (s *ServiceImpl) markSessionEnd() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.EndTime = time.Now()
}
