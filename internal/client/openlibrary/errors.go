package openlibrary

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrEmptyIdentifier indicates that a record identifier was blank.
	ErrEmptyIdentifier = errors.New("identifier cannot be empty")
	// ErrEmptyQuery indicates that a search query was blank.
	ErrEmptyQuery = errors.New("search query cannot be empty")
	// ErrRecordNotFound indicates that no record matched the requested bibliographic keys.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnexpectedResponseFormat indicates an upstream document whose shape could not be recognized.
	ErrUnexpectedResponseFormat = errors.New("unexpected response format")
)
