package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRestyClient tests the NewRestyClient function.
func TestNewRestyClient(t *testing.T) {
	t.Parallel()

	client := NewRestyClient(10*time.Second, "TestAgent/1.0", 0)
	assert.NotNil(t, client)

	// Zero values fall back to defaults.
	client = NewRestyClient(0, "", 0)
	assert.NotNil(t, client)
}

// TestRestyClient_Get tests the Get method against a local server.
func TestRestyClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "value", r.URL.Query().Get("key"))
		assert.Equal(t, "custom", r.Header.Get("X-Custom"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewRestyClient(10*time.Second, "TestAgent/1.0", 0)

	query := url.Values{}
	query.Set("key", "value")

	response, err := client.Get(context.Background(), server.URL, query, map[string]string{"X-Custom": "custom"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(response.Body))
	assert.Equal(t, "application/json", response.Headers.Get("Content-Type"))
}

// TestRestyClient_Get_NonOKStatus tests that non-2xx statuses are returned, not treated as errors.
func TestRestyClient_Get_NonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewRestyClient(10*time.Second, "TestAgent/1.0", 0)

	response, err := client.Get(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

// TestRestyClient_Get_ConnectionError tests that transport failures surface as errors.
func TestRestyClient_Get_ConnectionError(t *testing.T) {
	t.Parallel()

	client := NewRestyClient(time.Second, "TestAgent/1.0", 0)

	response, err := client.Get(context.Background(), "http://127.0.0.1:1", nil, nil)
	require.Error(t, err)
	assert.Nil(t, response)
}

// TestRestyClient_Get_ContextCancellation tests that a canceled context aborts the request.
func TestRestyClient_Get_ContextCancellation(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		time.Sleep(5 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRestyClient(30*time.Second, "TestAgent/1.0", 0)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-started
		cancel()
	}()

	_, err := client.Get(ctx, server.URL, nil, nil)
	require.Error(t, err)
}
