package http

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDInjector is a custom http.RoundTripper that tags every outgoing request
// with a unique X-Request-ID header. The ID also appears in debug logs,
// which makes it possible to correlate a log line with a single API call.
type RequestIDInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
}

// requestIDHeader is the HTTP header name for the request ID.
const requestIDHeader = "X-Request-ID"

// NewRequestIDInjector creates and returns a new instance of RequestIDInjector.
func NewRequestIDInjector(next http.RoundTripper) http.RoundTripper {
	return &RequestIDInjector{next: next}
}

// RoundTrip executes a single HTTP transaction and injects an X-Request-ID header if it is missing.
// It implements the http.RoundTripper interface.
func (t *RequestIDInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	return t.next.RoundTrip(req)
}
