package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// FetchJSONResult wraps a decoded payload together with the transport-level
// details of the call that produced it.
type FetchJSONResult[T any] struct {
	// Data is the decoded payload, nil when the call failed.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Headers contains the response headers.
	Headers http.Header
}

// fetchJSON fetches JSON from the specified URI.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, uri string) (*FetchJSONResult[T], error) {
	return fetchJSONWithQuery[T](c, ctx, uri, nil)
}

// fetchJSONWithQuery fetches JSON from the specified URI with the specified query.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSONWithQuery[T any](
	c *ClientImpl,
	ctx context.Context,
	uri string,
	query url.Values,
) (*FetchJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Get(ctx, route, query, nil)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return &FetchJSONResult[T]{
				Data:       nil,
				StatusCode: response.StatusCode,
				Headers:    response.Headers,
			},
			fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result T
	if err = json.Unmarshal(response.Body, &result); err != nil {
		return &FetchJSONResult[T]{
				Data:       nil,
				StatusCode: response.StatusCode,
				Headers:    response.Headers,
			},
			fmt.Errorf("failed to decode %s response: %w", uri, err)
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
		Headers:    response.Headers,
	}, nil
}

// recordURI builds the JSON record path for an identifier within a section,
// e.g. recordURI("books", "OL7353617M") yields "books/OL7353617M.json".
func recordURI(section, id string) string {
	return section + "/" + url.PathEscape(id) + jsonSuffix
}
