// Package httpclient provides a thin HTTP transport wrapper around resty.
// It issues one GET per call and returns the status code, raw body,
// and headers of the response, leaving interpretation to the caller.
package httpclient
