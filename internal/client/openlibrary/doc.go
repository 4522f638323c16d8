// Package openlibrary provides a Go client for the Open Library REST API,
// offering typed lookup and search operations over bibliographic records.
// It covers edition, work, and author lookups by OLID, bibliographic key
// lookups by ISBN, LCCN, and OCLC number, full-text search for books and
// authors, and subject browsing. Every operation issues a single parameterized
// GET request and normalizes the heterogeneous upstream JSON shapes into one
// uniform paginated envelope. The client implements structured error handling
// for API interactions and performs no caching, retrying, or authentication.
package openlibrary
