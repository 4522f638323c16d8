package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	// Open Library asks API consumers to identify themselves with a descriptive User-Agent.
	DefaultUserAgent = "openlibrary-fetcher/1.0"
)
