package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	http_transport "openlibrary-fetcher/internal/transport/http"
	"openlibrary-fetcher/internal/utils"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
// The underlying transport chain injects a User-Agent header and a per-request ID,
// and dumps requests/responses when debug logging is enabled.
type RestyClient struct {
	// client is the underlying resty HTTP client.
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout and User-Agent string.
// If timeout is zero, http_transport.DefaultTimeout is used.
// If userAgent is empty, http_transport.DefaultUserAgent is used.
// maxLogLength caps dumped request/response bodies in debug logs, zero means the default cap.
func NewRestyClient(timeout time.Duration, userAgent string, maxLogLength uint64) *RestyClient {
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	if userAgent == "" {
		userAgent = http_transport.DefaultUserAgent
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetTransport(
		http_transport.NewUserAgentInjector(
			http_transport.NewRequestIDInjector(
				http_transport.NewLogTransport(http.DefaultTransport, maxLogLength),
			),
			utils.NewSimpleUserAgentProvider(userAgent)))

	return &RestyClient{client: client}
}

// Get performs an HTTP GET request with the specified context, URL, query parameters, and headers.
// Any HTTP status is returned to the caller as part of the Response, a non-2xx code is not an error here.
func (r *RestyClient) Get(
	ctx context.Context,
	rawURL string,
	query url.Values,
	headers map[string]string,
) (*Response, error) {
	request := r.client.R().SetContext(ctx)

	if len(query) > 0 {
		request.SetQueryParamsFromValues(query)
	}

	if len(headers) > 0 {
		request.SetHeaders(headers)
	}

	response, err := request.Get(rawURL)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: response.StatusCode(),
		Body:       response.Body(),
		Headers:    response.Header(),
	}, nil
}
