package openlibrary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeDocument_ListShapes tests the three list-style document shapes.
func TestNormalizeDocument_ListShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		document      string
		page          int
		perPage       int
		expectedTotal int64
		expectedItems int
		expectedPages int
		expectedLinks map[string]string
	}{
		{
			name:          "search shape with numFound and docs",
			document:      `{"numFound": 629, "start": 0, "docs": [{"title": "a"}, {"title": "b"}]}`,
			page:          1,
			perPage:       2,
			expectedTotal: 629,
			expectedItems: 2,
			expectedPages: 315,
		},
		{
			name: "listing shape with size, entries, and links",
			document: `{"size": 618, "links": {"next": "/authors/OL34184A/works.json?offset=50"},` +
				` "entries": [{"title": "a"}]}`,
			page:          2,
			perPage:       50,
			expectedTotal: 618,
			expectedItems: 1,
			expectedPages: 13,
			expectedLinks: map[string]string{"next": "/authors/OL34184A/works.json?offset=50"},
		},
		{
			name:          "subject shape with work_count and works",
			document:      `{"work_count": 3, "works": [{"title": "a"}, {"title": "b"}, {"title": "c"}]}`,
			page:          1,
			perPage:       10,
			expectedTotal: 3,
			expectedItems: 3,
			expectedPages: 1,
		},
		{
			name:          "empty list still yields one page",
			document:      `{"numFound": 0, "docs": []}`,
			page:          1,
			perPage:       20,
			expectedTotal: 0,
			expectedItems: 0,
			expectedPages: 1,
		},
		{
			name:          "negative total is clamped",
			document:      `{"numFound": -5, "docs": []}`,
			page:          1,
			perPage:       20,
			expectedTotal: 0,
			expectedItems: 0,
			expectedPages: 1,
		},
		{
			name:          "total below item count is corrected upward",
			document:      `{"numFound": 1, "docs": [{"title": "a"}, {"title": "b"}]}`,
			page:          1,
			perPage:       20,
			expectedTotal: 2,
			expectedItems: 2,
			expectedPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NormalizeDocument([]byte(tt.document), tt.page, tt.perPage)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedTotal, result.Total)
			assert.Len(t, result.Items, tt.expectedItems)
			assert.NotNil(t, result.Items)
			assert.Equal(t, tt.expectedPages, result.Pagination.TotalPages)
			assert.GreaterOrEqual(t, result.Pagination.CurrentPage, 1)
			assert.GreaterOrEqual(t, result.Pagination.PerPage, 1)

			if tt.expectedLinks != nil {
				assert.Equal(t, tt.expectedLinks, result.Links)
			}
		})
	}
}

// TestNormalizeDocument_BibkeyMap tests the bibliographic-key map shape.
func TestNormalizeDocument_BibkeyMap(t *testing.T) {
	t.Parallel()

	document := `{
		"OLID:OL7353617M": {"title": "Fantastic Mr. Fox"},
		"ISBN:9780140328721": {"title": "Fantastic Mr. Fox"}
	}`

	result, err := NormalizeDocument([]byte(document), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Items, 2)

	// Items are ordered by key for determinism.
	var first map[string]any
	require.NoError(t, json.Unmarshal(result.Items[0], &first))
	assert.Equal(t, "Fantastic Mr. Fox", first["title"])
}

// TestNormalizeDocument_SingleObject tests the single-object shape.
func TestNormalizeDocument_SingleObject(t *testing.T) {
	t.Parallel()

	document := `{"key": "/books/OL7353617M", "title": "Fantastic Mr. Fox"}`

	result, err := NormalizeDocument([]byte(document), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, Pagination{CurrentPage: 1, PerPage: 1, TotalItems: 1, TotalPages: 1}, result.Pagination)
}

// TestNormalizeDocument_BareArray tests the bare-array shape.
func TestNormalizeDocument_BareArray(t *testing.T) {
	t.Parallel()

	document := `[{"title": "a"}, {"title": "b"}]`

	result, err := NormalizeDocument([]byte(document), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Items, 2)
}

// TestNormalizeDocument_Errors tests rejection of unrecognizable documents.
func TestNormalizeDocument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		document    string
		expectedErr error
	}{
		{
			name:        "empty document",
			document:    "   ",
			expectedErr: ErrUnexpectedResponseFormat,
		},
		{
			name:        "scalar document",
			document:    `42`,
			expectedErr: ErrUnexpectedResponseFormat,
		},
		{
			name:        "malformed JSON",
			document:    `{"key": `,
			expectedErr: ErrUnexpectedResponseFormat,
		},
		{
			name:        "list marker with non-array items",
			document:    `{"numFound": 1, "docs": "not an array"}`,
			expectedErr: ErrUnexpectedResponseFormat,
		},
		{
			name:        "list marker with non-numeric total",
			document:    `{"numFound": "lots", "docs": []}`,
			expectedErr: ErrUnexpectedResponseFormat,
		},
		{
			name:        "empty object",
			document:    `{}`,
			expectedErr: ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NormalizeDocument([]byte(tt.document), 1, 10)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestNormalizeDocument_BibkeyDetection tests the boundary between bibkey maps and single objects.
func TestNormalizeDocument_BibkeyDetection(t *testing.T) {
	t.Parallel()

	// A key with a colon but an unknown prefix is not a bibkey,
	// so the document is treated as a single object.
	document := `{"FOO:123": {"title": "a"}}`

	result, err := NormalizeDocument([]byte(document), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)

	// A mixed document where one value is not an object is also a single object.
	document = `{"ISBN:123": {"title": "a"}, "ISBN:456": "not an object"}`

	result, err = NormalizeDocument([]byte(document), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
}
