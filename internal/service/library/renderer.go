package library

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"openlibrary-fetcher/internal/client/openlibrary"
	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/utils"
)

// Renderer writes normalized results to an output stream
// in the configured format (text or JSON).
type Renderer struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// out is the destination stream.
	out io.Writer
}

// NewRenderer creates a renderer that writes to the provided stream.
func NewRenderer(cfg *config.Config, out io.Writer) *Renderer {
	return &Renderer{
		cfg: cfg,
		out: out,
	}
}

// RenderEditions renders a page of edition records.
func (r *Renderer) RenderEditions(result *openlibrary.Result[*openlibrary.Edition], label string) error {
	return renderResult(r, result, label, describeEdition)
}

// RenderWorks renders a page of work records.
func (r *Renderer) RenderWorks(result *openlibrary.Result[*openlibrary.Work], label string) error {
	return renderResult(r, result, label, describeWork)
}

// RenderAuthors renders a page of author records.
func (r *Renderer) RenderAuthors(result *openlibrary.Result[*openlibrary.Author], label string) error {
	return renderResult(r, result, label, describeAuthor)
}

// RenderBibkeyRecords renders a page of bibliographic key records.
func (r *Renderer) RenderBibkeyRecords(result *openlibrary.Result[*openlibrary.BibkeyRecord], label string) error {
	return renderResult(r, result, label, describeBibkeyRecord)
}

// RenderBookDocs renders a page of book search documents.
func (r *Renderer) RenderBookDocs(result *openlibrary.Result[*openlibrary.BookDoc], label string) error {
	return renderResult(r, result, label, describeBookDoc)
}

// RenderAuthorDocs renders a page of author search documents.
func (r *Renderer) RenderAuthorDocs(result *openlibrary.Result[*openlibrary.AuthorDoc], label string) error {
	return renderResult(r, result, label, describeAuthorDoc)
}

// RenderSubjectWorks renders a page of works from a subject listing.
func (r *Renderer) RenderSubjectWorks(result *openlibrary.Result[*openlibrary.SubjectWork], label string) error {
	return renderResult(r, result, label, describeSubjectWork)
}

// renderResult renders a normalized result envelope.
// It is a free function because Go does not allow generic methods.
func renderResult[T any](
	r *Renderer,
	result *openlibrary.Result[T],
	label string,
	describe func(T) string,
) error {
	if r.cfg.OutputFormat == config.OutputFormatJSON {
		return r.renderJSON(result)
	}

	pagination := result.Pagination

	_, err := fmt.Fprintf(r.out, "%s: %s record(s), page %d of %s (%d per page)\n",
		label,
		humanize.Comma(result.Total),
		pagination.CurrentPage,
		humanize.Comma(int64(pagination.TotalPages)),
		pagination.PerPage)
	if err != nil {
		return fmt.Errorf("failed to render result header: %w", err)
	}

	// Numbering continues across pages so that page 2 starts where page 1 ended.
	offset := openlibrary.CalculateOffset(pagination.CurrentPage, pagination.PerPage)

	for index, item := range result.Items {
		if _, err = fmt.Fprintf(r.out, "%d. %s\n", offset+index+1, describe(item)); err != nil {
			return fmt.Errorf("failed to render result item: %w", err)
		}
	}

	return r.renderLinks(result.Links)
}

// renderJSON writes the full result envelope as indented JSON.
func (r *Renderer) renderJSON(result any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result as JSON: %w", err)
	}

	return nil
}

// renderLinks prints navigation links in a stable order.
func (r *Renderer) renderLinks(links map[string]string) error {
	if len(links) == 0 {
		return nil
	}

	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(r.out, "%s: %s\n", name, links[name]); err != nil {
			return fmt.Errorf("failed to render result links: %w", err)
		}
	}

	return nil
}

func describeEdition(edition *openlibrary.Edition) string {
	var details []string

	if len(edition.Publishers) > 0 {
		details = append(details, strings.Join(edition.Publishers, ", "))
	}

	if edition.PublishDate != "" {
		details = append(details, edition.PublishDate)
	}

	if edition.NumberOfPages > 0 {
		details = append(details, fmt.Sprintf("%d pages", edition.NumberOfPages))
	}

	return describeRecord(edition.OLID(), edition.Title, details)
}

func describeWork(work *openlibrary.Work) string {
	var details []string

	if work.FirstPublishDate != "" {
		details = append(details, "first published "+work.FirstPublishDate)
	}

	if len(work.Subjects) > 0 {
		details = append(details, "subjects: "+strings.Join(firstN(work.Subjects, maxListedSubjects), ", "))
	}

	return describeRecord(work.OLID(), work.Title, details)
}

func describeAuthor(author *openlibrary.Author) string {
	var details []string

	if author.BirthDate != "" || author.DeathDate != "" {
		details = append(details, strings.TrimSpace(author.BirthDate+" - "+author.DeathDate))
	}

	return describeRecord(author.OLID(), author.Name, details)
}

func describeBibkeyRecord(record *openlibrary.BibkeyRecord) string {
	var details []string

	if len(record.Authors) > 0 {
		names := utils.Map(record.Authors, func(a openlibrary.BibkeyAuthor) string { return a.Name })
		details = append(details, "by "+strings.Join(names, ", "))
	}

	if record.PublishDate != "" {
		details = append(details, record.PublishDate)
	}

	return describeRecord(record.Bibkey, record.Title, details)
}

func describeBookDoc(doc *openlibrary.BookDoc) string {
	var details []string

	if len(doc.AuthorNames) > 0 {
		details = append(details, "by "+strings.Join(doc.AuthorNames, ", "))
	}

	if doc.FirstPublishYear > 0 {
		details = append(details, fmt.Sprintf("first published %d", doc.FirstPublishYear))
	}

	if doc.EditionCount > 0 {
		details = append(details, fmt.Sprintf("%s edition(s)", humanize.Comma(doc.EditionCount)))
	}

	return describeRecord(strings.TrimPrefix(doc.Key, "/works/"), doc.Title, details)
}

func describeAuthorDoc(doc *openlibrary.AuthorDoc) string {
	var details []string

	if doc.TopWork != "" {
		details = append(details, "top work: "+doc.TopWork)
	}

	if doc.WorkCount > 0 {
		details = append(details, fmt.Sprintf("%s work(s)", humanize.Comma(doc.WorkCount)))
	}

	return describeRecord(doc.Key, doc.Name, details)
}

func describeSubjectWork(work *openlibrary.SubjectWork) string {
	var details []string

	if len(work.Authors) > 0 {
		names := make([]string, 0, len(work.Authors))
		for _, author := range work.Authors {
			names = append(names, author.Name)
		}

		details = append(details, "by "+strings.Join(names, ", "))
	}

	if work.FirstPublishYear > 0 {
		details = append(details, fmt.Sprintf("first published %d", work.FirstPublishYear))
	}

	return describeRecord(strings.TrimPrefix(work.Key, "/works/"), work.Title, details)
}

// maxListedSubjects caps the number of subjects shown per work line.
const maxListedSubjects = 3

// describeRecord builds a single "ID: Title (details)" line.
func describeRecord(id, title string, details []string) string {
	line := title
	if line == "" {
		line = "(untitled)"
	}

	if id != "" {
		line = id + ": " + line
	}

	if len(details) > 0 {
		line += " (" + strings.Join(details, "; ") + ")"
	}

	return line
}

// firstN returns at most n leading elements of the slice.
func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}

	return values[:n]
}
