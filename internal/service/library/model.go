package library

import "time"

// LookupCategory represents the kind of record an identifier resolves to.
type LookupCategory int

// Lookup categories for classified identifiers.
const (
	// LookupCategoryUnknown marks identifiers that matched no known format.
	LookupCategoryUnknown LookupCategory = iota
	// LookupCategoryEdition marks edition OLIDs (OL...M).
	LookupCategoryEdition
	// LookupCategoryWork marks work OLIDs (OL...W).
	LookupCategoryWork
	// LookupCategoryAuthor marks author OLIDs (OL...A).
	LookupCategoryAuthor
	// LookupCategoryISBN marks ISBN-10 and ISBN-13 identifiers.
	LookupCategoryISBN
	// LookupCategoryLCCN marks Library of Congress Control Numbers.
	LookupCategoryLCCN
	// LookupCategoryOCLC marks OCLC (WorldCat) numbers.
	LookupCategoryOCLC
)

// String returns a human-readable name for the category.
func (c LookupCategory) String() string {
	switch c {
	case LookupCategoryEdition:
		return "edition"
	case LookupCategoryWork:
		return "work"
	case LookupCategoryAuthor:
		return "author"
	case LookupCategoryISBN:
		return "ISBN"
	case LookupCategoryLCCN:
		return "LCCN"
	case LookupCategoryOCLC:
		return "OCLC"
	case LookupCategoryUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// LookupItem is a single classified identifier ready to be fetched.
type LookupItem struct {
	// Category is the kind of record the identifier resolves to.
	Category LookupCategory
	// Raw is the identifier exactly as the user supplied it.
	Raw string
	// Value is the extracted identifier, e.g. "OL7353617M" or "9780140328721".
	Value string
}

// ShortLookupItem is the deduplication key of a LookupItem.
type ShortLookupItem struct {
	// Category is the kind of record the identifier resolves to.
	Category LookupCategory
	// Value is the extracted identifier.
	Value string
}

// FetchError records a single failed lookup for the summary report.
type FetchError struct {
	// Category is the kind of record that failed to fetch.
	Category LookupCategory
	// Identifier is the identifier that failed.
	Identifier string
	// ErrorMessage is the error text.
	ErrorMessage string
}

// FetchStatistics tracks what happened during a fetch session.
type FetchStatistics struct {
	// StartTime is when the session started.
	StartTime time.Time
	// EndTime is when the session finished.
	EndTime time.Time
	// RecordsFetched is the number of records successfully fetched and rendered.
	RecordsFetched int64
	// LookupsFailed is the number of lookups that returned an error.
	LookupsFailed int64
	// IdentifiersSkipped is the number of supplied identifiers that matched no known format.
	IdentifiersSkipped int64
	// Errors holds the details of every failed lookup.
	Errors []FetchError
}
