package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRequestIDInjector tests the NewRequestIDInjector function.
func TestNewRequestIDInjector(t *testing.T) {
	t.Parallel()

	injector := NewRequestIDInjector(http.DefaultTransport)

	assert.NotNil(t, injector)
	assert.Implements(t, (*http.RoundTripper)(nil), injector)
}

// TestRequestIDInjector_RoundTrip_GeneratesID tests that a valid UUID is injected when the header is missing.
func TestRequestIDInjector_RoundTrip_GeneratesID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		assert.NotEmpty(t, id)

		_, err := uuid.Parse(id)
		assert.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	injector := NewRequestIDInjector(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)

	resp, err := injector.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestRequestIDInjector_RoundTrip_KeepsExistingID tests that an existing X-Request-ID header is preserved.
func TestRequestIDInjector_RoundTrip_KeepsExistingID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "existing-id", r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	injector := NewRequestIDInjector(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "existing-id")

	resp, err := injector.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestRequestIDInjector_RoundTrip_UniquePerRequest tests that consecutive requests get distinct IDs.
func TestRequestIDInjector_RoundTrip_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		_, duplicate := seen[id]
		assert.False(t, duplicate, "request ID %q was reused", id)

		seen[id] = struct{}{}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	injector := NewRequestIDInjector(http.DefaultTransport)

	for range 5 {
		req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
		require.NoError(t, err)

		resp, err := injector.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
