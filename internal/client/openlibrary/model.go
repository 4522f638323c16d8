package openlibrary

import (
	"encoding/json"
	"fmt"
)

// Text represents a field that Open Library serves either as a plain JSON string
// or as a typed object like {"type": "/type/text", "value": "..."}.
// Descriptions, bios, and first sentences all use this dual encoding.
type Text struct {
	// Value is the textual content regardless of the upstream encoding.
	Value string
}

// textObject is the wire form of the typed variant of Text.
type textObject struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// UnmarshalJSON implements json.Unmarshaler, accepting both encodings of Text.
func (t *Text) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		t.Value = plain

		return nil
	}

	var typed textObject
	if err := json.Unmarshal(data, &typed); err != nil {
		return fmt.Errorf("%w: text field is neither a string nor a text object", ErrUnexpectedResponseFormat)
	}

	t.Value = typed.Value

	return nil
}

// MarshalJSON implements json.Marshaler, always emitting the plain string form.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value)
}

// String returns the textual content.
func (t Text) String() string {
	return t.Value
}

// KeyRef is a reference to another record by its site path, e.g. {"key": "/authors/OL34184A"}.
type KeyRef struct {
	// Key is the site path of the referenced record.
	Key string `json:"key"`
}

// AuthorRef is the nested author reference used inside work records.
type AuthorRef struct {
	// Author references the author record.
	Author KeyRef `json:"author"`
}

// Edition represents a single edition record (a physical or electronic publication).
type Edition struct {
	// Key is the site path of the edition, e.g. "/books/OL7353617M".
	Key string `json:"key"`
	// Title is the edition title.
	Title string `json:"title"`
	// Subtitle is the edition subtitle, if any.
	Subtitle string `json:"subtitle,omitempty"`
	// Authors references the author records of this edition.
	Authors []KeyRef `json:"authors,omitempty"`
	// Works references the work records this edition belongs to.
	Works []KeyRef `json:"works,omitempty"`
	// Publishers is the list of publisher names.
	Publishers []string `json:"publishers,omitempty"`
	// PublishDate is the publication date as printed in the edition.
	PublishDate string `json:"publish_date,omitempty"`
	// PublishPlaces is the list of publication places.
	PublishPlaces []string `json:"publish_places,omitempty"`
	// NumberOfPages is the page count.
	NumberOfPages int64 `json:"number_of_pages,omitempty"`
	// ISBN10 is the list of ISBN-10 identifiers.
	ISBN10 []string `json:"isbn_10,omitempty"`
	// ISBN13 is the list of ISBN-13 identifiers.
	ISBN13 []string `json:"isbn_13,omitempty"`
	// LCCN is the list of Library of Congress Control Numbers.
	LCCN []string `json:"lccn,omitempty"`
	// OCLCNumbers is the list of OCLC (WorldCat) numbers.
	OCLCNumbers []string `json:"oclc_numbers,omitempty"`
	// Covers is the list of cover image IDs.
	Covers []int64 `json:"covers,omitempty"`
	// Languages references the language records of this edition.
	Languages []KeyRef `json:"languages,omitempty"`
	// Subjects is the list of subject headings.
	Subjects []string `json:"subjects,omitempty"`
}

// OLID returns the bare Open Library identifier of the edition, e.g. "OL7353617M".
func (e *Edition) OLID() string {
	return olidFromKey(e.Key)
}

// Work represents a work record (the abstract creation behind one or more editions).
type Work struct {
	// Key is the site path of the work, e.g. "/works/OL45883W".
	Key string `json:"key"`
	// Title is the work title.
	Title string `json:"title"`
	// Description is the work description.
	Description Text `json:"description,omitempty"`
	// Authors references the author records of this work.
	Authors []AuthorRef `json:"authors,omitempty"`
	// Subjects is the list of subject headings.
	Subjects []string `json:"subjects,omitempty"`
	// Covers is the list of cover image IDs.
	Covers []int64 `json:"covers,omitempty"`
	// FirstPublishDate is the earliest known publication date.
	FirstPublishDate string `json:"first_publish_date,omitempty"`
}

// OLID returns the bare Open Library identifier of the work, e.g. "OL45883W".
func (w *Work) OLID() string {
	return olidFromKey(w.Key)
}

// Author represents an author record.
type Author struct {
	// Key is the site path of the author, e.g. "/authors/OL34184A".
	Key string `json:"key"`
	// Name is the author's name.
	Name string `json:"name"`
	// PersonalName is the author's personal name when it differs from Name.
	PersonalName string `json:"personal_name,omitempty"`
	// AlternateNames is the list of alternative spellings and pen names.
	AlternateNames []string `json:"alternate_names,omitempty"`
	// Bio is the author's biography.
	Bio Text `json:"bio,omitempty"`
	// BirthDate is the author's date of birth as recorded.
	BirthDate string `json:"birth_date,omitempty"`
	// DeathDate is the author's date of death as recorded.
	DeathDate string `json:"death_date,omitempty"`
	// Photos is the list of photo image IDs.
	Photos []int64 `json:"photos,omitempty"`
}

// OLID returns the bare Open Library identifier of the author, e.g. "OL34184A".
func (a *Author) OLID() string {
	return olidFromKey(a.Key)
}

// BookDoc represents a single book search result document.
type BookDoc struct {
	// Key is the site path of the matched work.
	Key string `json:"key"`
	// Title is the work title.
	Title string `json:"title"`
	// AuthorNames is the list of author names.
	AuthorNames []string `json:"author_name,omitempty"`
	// AuthorKeys is the list of bare author OLIDs.
	AuthorKeys []string `json:"author_key,omitempty"`
	// FirstPublishYear is the earliest known publication year.
	FirstPublishYear int64 `json:"first_publish_year,omitempty"`
	// EditionCount is the number of editions of the work.
	EditionCount int64 `json:"edition_count,omitempty"`
	// ISBNs is the list of ISBNs across all editions.
	ISBNs []string `json:"isbn,omitempty"`
	// Languages is the list of language codes across all editions.
	Languages []string `json:"language,omitempty"`
	// CoverID is the cover image ID.
	CoverID int64 `json:"cover_i,omitempty"`
}

// AuthorDoc represents a single author search result document.
type AuthorDoc struct {
	// Key is the bare author OLID, e.g. "OL34184A".
	Key string `json:"key"`
	// Name is the author's name.
	Name string `json:"name"`
	// BirthDate is the author's date of birth as recorded.
	BirthDate string `json:"birth_date,omitempty"`
	// DeathDate is the author's date of death as recorded.
	DeathDate string `json:"death_date,omitempty"`
	// TopWork is the title of the author's best-known work.
	TopWork string `json:"top_work,omitempty"`
	// WorkCount is the number of works attributed to the author.
	WorkCount int64 `json:"work_count,omitempty"`
}

// BibkeyAuthor is the author form used by the api/books endpoint.
type BibkeyAuthor struct {
	// URL is the site URL of the author.
	URL string `json:"url,omitempty"`
	// Name is the author's name.
	Name string `json:"name"`
}

// BibkeyPublisher is the publisher form used by the api/books endpoint.
type BibkeyPublisher struct {
	// Name is the publisher name.
	Name string `json:"name"`
}

// BibkeyCover holds the cover image URLs of a bibliographic key record.
type BibkeyCover struct {
	// Small is the URL of the small cover image.
	Small string `json:"small,omitempty"`
	// Medium is the URL of the medium cover image.
	Medium string `json:"medium,omitempty"`
	// Large is the URL of the large cover image.
	Large string `json:"large,omitempty"`
}

// BibkeyIdentifiers lists the external identifiers of a bibliographic key record.
type BibkeyIdentifiers struct {
	// ISBN10 is the list of ISBN-10 identifiers.
	ISBN10 []string `json:"isbn_10,omitempty"`
	// ISBN13 is the list of ISBN-13 identifiers.
	ISBN13 []string `json:"isbn_13,omitempty"`
	// LCCN is the list of Library of Congress Control Numbers.
	LCCN []string `json:"lccn,omitempty"`
	// OCLC is the list of OCLC (WorldCat) numbers.
	OCLC []string `json:"oclc,omitempty"`
	// OpenLibrary is the list of Open Library identifiers.
	OpenLibrary []string `json:"openlibrary,omitempty"`
}

// BibkeyRecord represents one record returned by the api/books bibliographic key endpoint.
type BibkeyRecord struct {
	// Bibkey is the requested key this record answered, e.g. "ISBN:9780140328721".
	// It is filled in by the client, not by the upstream payload.
	Bibkey string `json:"-"`
	// URL is the site URL of the edition.
	URL string `json:"url,omitempty"`
	// Key is the site path of the edition.
	Key string `json:"key"`
	// Title is the edition title.
	Title string `json:"title"`
	// Authors is the list of authors with names resolved.
	Authors []BibkeyAuthor `json:"authors,omitempty"`
	// Publishers is the list of publishers.
	Publishers []BibkeyPublisher `json:"publishers,omitempty"`
	// PublishDate is the publication date as printed in the edition.
	PublishDate string `json:"publish_date,omitempty"`
	// NumberOfPages is the page count.
	NumberOfPages int64 `json:"number_of_pages,omitempty"`
	// Identifiers lists the external identifiers of the edition.
	Identifiers BibkeyIdentifiers `json:"identifiers,omitempty"`
	// Cover holds the cover image URLs.
	Cover BibkeyCover `json:"cover,omitempty"`
}

// SubjectWork represents a single work inside a subject listing.
type SubjectWork struct {
	// Key is the site path of the work.
	Key string `json:"key"`
	// Title is the work title.
	Title string `json:"title"`
	// EditionCount is the number of editions of the work.
	EditionCount int64 `json:"edition_count,omitempty"`
	// CoverID is the cover image ID.
	CoverID int64 `json:"cover_id,omitempty"`
	// Authors is the list of authors of the work.
	Authors []struct {
		// Key is the site path of the author.
		Key string `json:"key"`
		// Name is the author's name.
		Name string `json:"name"`
	} `json:"authors,omitempty"`
	// FirstPublishYear is the earliest known publication year.
	FirstPublishYear int64 `json:"first_publish_year,omitempty"`
}

// searchBooksResponse is the wire shape of the book search endpoint.
type searchBooksResponse struct {
	// NumFound is the total number of matching documents.
	NumFound int64 `json:"numFound"`
	// Start is the zero-based offset of the first returned document.
	Start int64 `json:"start"`
	// Docs is the page of matching documents.
	Docs []*BookDoc `json:"docs"`
}

// searchAuthorsResponse is the wire shape of the author search endpoint.
type searchAuthorsResponse struct {
	// NumFound is the total number of matching documents.
	NumFound int64 `json:"numFound"`
	// Start is the zero-based offset of the first returned document.
	Start int64 `json:"start"`
	// Docs is the page of matching documents.
	Docs []*AuthorDoc `json:"docs"`
}

// authorWorksResponse is the wire shape of the author works endpoint.
type authorWorksResponse struct {
	// Links holds navigation links for the listing (self, author, next).
	Links map[string]string `json:"links"`
	// Size is the total number of works of the author.
	Size int64 `json:"size"`
	// Entries is the page of work records.
	Entries []*Work `json:"entries"`
}

// subjectResponse is the wire shape of the subject browsing endpoint.
type subjectResponse struct {
	// Key is the site path of the subject.
	Key string `json:"key"`
	// Name is the subject name.
	Name string `json:"name"`
	// WorkCount is the total number of works under the subject.
	WorkCount int64 `json:"work_count"`
	// Works is the page of works under the subject.
	Works []*SubjectWork `json:"works"`
}
