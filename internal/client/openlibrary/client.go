package openlibrary

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/httpclient"
	"openlibrary-fetcher/internal/logger"
)

// Client defines the interface for interacting with the Open Library API.
type Client interface {
	// GetAuthor retrieves the author record for the specified author OLID.
	GetAuthor(ctx context.Context, olid string) (*Result[*Author], error)
	// GetAuthorWorks retrieves one page of the works attributed to the specified author.
	GetAuthorWorks(ctx context.Context, olid string, page, perPage int) (*Result[*Work], error)
	// GetBaseURL returns the base URL of the Open Library API.
	GetBaseURL() string
	// GetBook retrieves the edition record for the specified edition OLID.
	GetBook(ctx context.Context, olid string) (*Result[*Edition], error)
	// GetBookByISBN retrieves the edition record for the specified ISBN.
	GetBookByISBN(ctx context.Context, isbn string) (*Result[*Edition], error)
	// GetBookByLCCN retrieves the edition record for the specified Library of Congress Control Number.
	GetBookByLCCN(ctx context.Context, lccn string) (*Result[*BibkeyRecord], error)
	// GetBookByOCLC retrieves the edition record for the specified OCLC number.
	GetBookByOCLC(ctx context.Context, oclc string) (*Result[*BibkeyRecord], error)
	// GetBooksByBibkeys retrieves edition records for the specified bibliographic keys,
	// e.g. "ISBN:9780140328721" or "OLID:OL7353617M".
	GetBooksByBibkeys(ctx context.Context, bibkeys []string) (*Result[*BibkeyRecord], error)
	// GetBookURL constructs the site URL for a specific edition.
	GetBookURL(olid string) (string, error)
	// GetSubject retrieves one page of the works filed under the specified subject.
	GetSubject(ctx context.Context, subject string, page, perPage int) (*Result[*SubjectWork], error)
	// GetWork retrieves the work record for the specified work OLID.
	GetWork(ctx context.Context, olid string) (*Result[*Work], error)
	// SearchAuthors searches author records matching the query.
	SearchAuthors(ctx context.Context, query string, page, perPage int) (*Result[*AuthorDoc], error)
	// SearchBooks searches book records matching the given parameters.
	SearchBooks(ctx context.Context, params *SearchBooksParams) (*Result[*BookDoc], error)
}

// SearchBooksParams holds the parameters of a book search.
type SearchBooksParams struct {
	// Query is the search query, required.
	Query string
	// Page is the 1-based page number, defaults to DefaultPage.
	Page int
	// PerPage is the page size, defaults to DefaultPerPage.
	PerPage int
	// Fields restricts the returned document fields, empty means the upstream default set.
	Fields []string
	// Sort orders the results (e.g. "new", "old", "rating"), empty means relevance.
	Sort string
	// Language boosts results in the given ISO 639-1 language code.
	Language string
}

// ClientImpl implements the Client interface for interacting with the Open Library API.
type ClientImpl struct {
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the transport used for making requests.
	httpClient httpclient.Client
}

// NewClient creates and returns a new instance of ClientImpl.
// It initializes the HTTP transport with the provided configuration.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	transport := httpclient.NewRestyClient(cfg.ParsedTimeout, cfg.UserAgent, cfg.ParsedMaxLogLength)

	return NewClientWithTransport(baseURL.String(), transport), nil
}

// NewClientWithTransport creates a ClientImpl on top of an existing transport.
// It exists so tests and embedders can inject their own httpclient.Client.
func NewClientWithTransport(baseURL string, transport httpclient.Client) *ClientImpl {
	return &ClientImpl{
		baseURL:    baseURL,
		httpClient: transport,
	}
}

// GetAuthor retrieves the author record for the specified author OLID.
func (c *ClientImpl) GetAuthor(ctx context.Context, olid string) (*Result[*Author], error) {
	olid = strings.TrimSpace(olid)
	if olid == "" {
		return nil, ErrEmptyIdentifier
	}

	result, err := fetchJSON[Author](c, ctx, recordURI(openLibraryAuthorsURI, olid))
	if err != nil {
		return nil, err
	}

	return newSingleResult(result.Data), nil
}

// GetAuthorWorks retrieves one page of the works attributed to the specified author.
func (c *ClientImpl) GetAuthorWorks(ctx context.Context, olid string, page, perPage int) (*Result[*Work], error) {
	olid = strings.TrimSpace(olid)
	if olid == "" {
		return nil, ErrEmptyIdentifier
	}

	page, perPage = NormalizePageWindow(page, perPage)

	query := url.Values{}
	query.Set("limit", strconv.Itoa(perPage))
	query.Set("offset", strconv.Itoa(CalculateOffset(page, perPage)))

	uri := openLibraryAuthorsURI + "/" + url.PathEscape(olid) + "/" + worksSuffix

	result, err := fetchJSONWithQuery[authorWorksResponse](c, ctx, uri, query)
	if err != nil {
		return nil, err
	}

	return newListResult(result.Data.Entries, result.Data.Size, result.Data.Links, page, perPage), nil
}

// GetBaseURL returns the base URL of the Open Library API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// GetBook retrieves the edition record for the specified edition OLID.
func (c *ClientImpl) GetBook(ctx context.Context, olid string) (*Result[*Edition], error) {
	olid = strings.TrimSpace(olid)
	if olid == "" {
		return nil, ErrEmptyIdentifier
	}

	result, err := fetchJSON[Edition](c, ctx, recordURI(openLibraryBooksURI, olid))
	if err != nil {
		return nil, err
	}

	return newSingleResult(result.Data), nil
}

// GetBookByISBN retrieves the edition record for the specified ISBN.
// Both ISBN-10 and ISBN-13 are accepted, hyphens are ignored.
func (c *ClientImpl) GetBookByISBN(ctx context.Context, isbn string) (*Result[*Edition], error) {
	isbn = strings.ReplaceAll(strings.TrimSpace(isbn), "-", "")
	if isbn == "" {
		return nil, ErrEmptyIdentifier
	}

	result, err := fetchJSON[Edition](c, ctx, recordURI(openLibraryISBNURI, isbn))
	if err != nil {
		return nil, err
	}

	return newSingleResult(result.Data), nil
}

// GetBookByLCCN retrieves the edition record for the specified Library of Congress Control Number.
func (c *ClientImpl) GetBookByLCCN(ctx context.Context, lccn string) (*Result[*BibkeyRecord], error) {
	return c.getBookByBibkey(ctx, BibkeyPrefixLCCN, lccn)
}

// GetBookByOCLC retrieves the edition record for the specified OCLC number.
func (c *ClientImpl) GetBookByOCLC(ctx context.Context, oclc string) (*Result[*BibkeyRecord], error) {
	return c.getBookByBibkey(ctx, BibkeyPrefixOCLC, oclc)
}

// GetBooksByBibkeys retrieves edition records for the specified bibliographic keys.
// Records are returned in request order; keys the upstream does not know are skipped.
// If none of the keys resolve, ErrRecordNotFound is returned.
func (c *ClientImpl) GetBooksByBibkeys(ctx context.Context, bibkeys []string) (*Result[*BibkeyRecord], error) {
	requested := make([]string, 0, len(bibkeys))

	for _, bibkey := range bibkeys {
		if trimmed := strings.TrimSpace(bibkey); trimmed != "" {
			requested = append(requested, trimmed)
		}
	}

	if len(requested) == 0 {
		return nil, ErrEmptyIdentifier
	}

	query := url.Values{}
	query.Set("bibkeys", strings.Join(requested, ","))
	query.Set("format", bibkeysFormatJSON)
	query.Set("jscmd", bibkeysModeData)

	result, err := fetchJSONWithQuery[map[string]*BibkeyRecord](c, ctx, openLibraryBibkeysURI, query)
	if err != nil {
		return nil, err
	}

	records := make([]*BibkeyRecord, 0, len(requested))

	for _, bibkey := range requested {
		record, ok := (*result.Data)[bibkey]
		if !ok || record == nil {
			logger.Debugf(ctx, "No record found for bibkey: %s", bibkey)

			continue
		}

		record.Bibkey = bibkey
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}

	return newListResult(records, int64(len(records)), nil, 1, len(records)), nil
}

// GetBookURL constructs the site URL for a specific edition.
func (c *ClientImpl) GetBookURL(olid string) (string, error) {
	olid = strings.TrimSpace(olid)
	if olid == "" {
		return "", ErrEmptyIdentifier
	}

	return url.JoinPath(c.baseURL, openLibraryBooksURI, olid)
}

// GetSubject retrieves one page of the works filed under the specified subject.
func (c *ClientImpl) GetSubject(
	ctx context.Context,
	subject string,
	page, perPage int,
) (*Result[*SubjectWork], error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptyIdentifier
	}

	page, perPage = NormalizePageWindow(page, perPage)

	query := url.Values{}
	query.Set("limit", strconv.Itoa(perPage))
	query.Set("offset", strconv.Itoa(CalculateOffset(page, perPage)))

	result, err := fetchJSONWithQuery[subjectResponse](c, ctx, recordURI(openLibrarySubjectsURI, subject), query)
	if err != nil {
		return nil, err
	}

	return newListResult(result.Data.Works, result.Data.WorkCount, nil, page, perPage), nil
}

// GetWork retrieves the work record for the specified work OLID.
func (c *ClientImpl) GetWork(ctx context.Context, olid string) (*Result[*Work], error) {
	olid = strings.TrimSpace(olid)
	if olid == "" {
		return nil, ErrEmptyIdentifier
	}

	result, err := fetchJSON[Work](c, ctx, recordURI(openLibraryWorksURI, olid))
	if err != nil {
		return nil, err
	}

	return newSingleResult(result.Data), nil
}

// SearchAuthors searches author records matching the query.
func (c *ClientImpl) SearchAuthors(
	ctx context.Context,
	query string,
	page, perPage int,
) (*Result[*AuthorDoc], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	page, perPage = NormalizePageWindow(page, perPage)

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(perPage))
	params.Set("offset", strconv.Itoa(CalculateOffset(page, perPage)))

	result, err := fetchJSONWithQuery[searchAuthorsResponse](c, ctx, openLibraryAuthorSearchURI, params)
	if err != nil {
		return nil, err
	}

	return newListResult(result.Data.Docs, result.Data.NumFound, nil, page, perPage), nil
}

// SearchBooks searches book records matching the given parameters.
func (c *ClientImpl) SearchBooks(ctx context.Context, params *SearchBooksParams) (*Result[*BookDoc], error) {
	if params == nil || strings.TrimSpace(params.Query) == "" {
		return nil, ErrEmptyQuery
	}

	page, perPage := NormalizePageWindow(params.Page, params.PerPage)

	query := url.Values{}
	query.Set("q", strings.TrimSpace(params.Query))
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(perPage))

	if len(params.Fields) > 0 {
		query.Set("fields", strings.Join(params.Fields, ","))
	}

	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}

	if params.Language != "" {
		query.Set("lang", params.Language)
	}

	result, err := fetchJSONWithQuery[searchBooksResponse](c, ctx, openLibrarySearchURI, query)
	if err != nil {
		return nil, err
	}

	return newListResult(result.Data.Docs, result.Data.NumFound, nil, page, perPage), nil
}

// getBookByBibkey looks up a single record through the bibliographic key endpoint.
func (c *ClientImpl) getBookByBibkey(
	ctx context.Context,
	prefix, id string,
) (*Result[*BibkeyRecord], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyIdentifier
	}

	result, err := c.GetBooksByBibkeys(ctx, []string{prefix + ":" + id})
	if err != nil {
		return nil, err
	}

	return newSingleResult(result.Items[0]), nil
}
