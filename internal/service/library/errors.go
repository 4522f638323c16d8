package library

import "errors"

// Static error definitions for better error handling.
var (
	// ErrNoIdentifiers indicates that no usable identifiers were supplied.
	ErrNoIdentifiers = errors.New("no identifiers to fetch")
	// ErrUnknownIdentifier indicates that an identifier matched none of the known formats.
	ErrUnknownIdentifier = errors.New("unknown identifier format")
)
