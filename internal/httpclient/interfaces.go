package httpclient

//go:generate $MOCKGEN -source=interfaces.go -destination=mocks/client_mock.go

import (
	"context"
	"net/http"
	"net/url"
)

// Response is the minimal result of a single HTTP GET:
// the status code, the raw body, and the response headers.
type Response struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the raw response body.
	Body []byte
	// Headers contains the response headers.
	Headers http.Header
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// Implementations issue exactly one GET per call and never retry.
type Client interface {
	// Get performs an HTTP GET request with the specified context, URL, query parameters, and headers.
	Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) (*Response, error)
}
