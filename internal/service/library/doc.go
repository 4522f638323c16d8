// Package library provides the core functionality for fetching bibliographic
// records from the Open Library API. It handles identifier classification,
// record lookups and searches, and rendering results as text or JSON.
package library
