package openlibrary

const (
	// openLibraryBooksURI is the URI path for edition records.
	openLibraryBooksURI = "books"
	// openLibraryWorksURI is the URI path for work records.
	openLibraryWorksURI = "works"
	// openLibraryAuthorsURI is the URI path for author records.
	openLibraryAuthorsURI = "authors"
	// openLibraryISBNURI is the URI path for ISBN-based edition lookups.
	openLibraryISBNURI = "isbn"
	// openLibraryBibkeysURI is the URI path for the bibliographic key lookup endpoint.
	openLibraryBibkeysURI = "api/books"
	// openLibrarySearchURI is the URI path for the book search endpoint.
	openLibrarySearchURI = "search.json"
	// openLibraryAuthorSearchURI is the URI path for the author search endpoint.
	openLibraryAuthorSearchURI = "search/authors.json"
	// openLibrarySubjectsURI is the URI path for subject browsing.
	openLibrarySubjectsURI = "subjects"

	// jsonSuffix is appended to record paths to request the JSON representation.
	jsonSuffix = ".json"

	// worksSuffix is appended to author paths to request the author's works listing.
	worksSuffix = "works.json"
)

// Bibliographic key prefixes accepted by the api/books endpoint.
const (
	// BibkeyPrefixISBN marks an International Standard Book Number key.
	BibkeyPrefixISBN = "ISBN"
	// BibkeyPrefixLCCN marks a Library of Congress Control Number key.
	BibkeyPrefixLCCN = "LCCN"
	// BibkeyPrefixOCLC marks an OCLC (WorldCat) number key.
	BibkeyPrefixOCLC = "OCLC"
	// BibkeyPrefixOLID marks an Open Library identifier key.
	BibkeyPrefixOLID = "OLID"
)

const (
	// bibkeysFormatJSON requests plain JSON instead of the default JSONP from api/books.
	bibkeysFormatJSON = "json"
	// bibkeysModeData requests full record data instead of the default availability view.
	bibkeysModeData = "data"
)
