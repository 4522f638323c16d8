//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSafeInt64ToInt tests the SafeInt64ToInt function.
func TestSafeInt64ToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int64
		expected int
	}{
		{
			name:     "zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "positive value",
			input:    42,
			expected: 42,
		},
		{
			name:     "negative value",
			input:    -42,
			expected: -42,
		},
		{
			name:     "max int64",
			input:    math.MaxInt64,
			expected: math.MaxInt,
		},
		{
			name:     "min int64",
			input:    math.MinInt64,
			expected: math.MinInt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := SafeInt64ToInt(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "plain text",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "html with utf-8 charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=UTF-8",
			expected:    true,
		},
		{
			name:        "javascript for jsonp responses",
			contentType: "application/javascript",
			expected:    true,
		},
		{
			name:        "binary content",
			contentType: "application/octet-stream",
			expected:    false,
		},
		{
			name:        "image",
			contentType: "image/jpeg",
			expected:    false,
		},
		{
			name:        "text with unsupported charset",
			contentType: "text/plain; charset=utf-16",
			expected:    false,
		},
		{
			name:        "invalid content type",
			contentType: "not a content type;;;",
			expected:    false,
		},
		{
			name:        "empty content type",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsTextContentType(tt.contentType)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestReadUniqueLinesFromFile tests the ReadUniqueLinesFromFile function.
func TestReadUniqueLinesFromFile(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates and skips blanks and comments", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "identifiers.txt")
		content := "9780140328721\n\nOL7353617M\n# a comment line\n9780140328721\n  OL26331930M  \n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		lines, err := ReadUniqueLinesFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"9780140328721", "OL7353617M", "OL26331930M"}, lines)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		t.Parallel()

		_, err := ReadUniqueLinesFromFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
		require.Error(t, err)
	})

	t.Run("empty file returns no lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

		lines, err := ReadUniqueLinesFromFile(path)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

// TestExtractNamedGroup tests the ExtractNamedGroup function.
func TestExtractNamedGroup(t *testing.T) {
	t.Parallel()

	olidPattern := regexp.MustCompile(`^(?P<ID>OL\d+[AMW])$`)

	tests := []struct {
		name      string
		pattern   *regexp.Regexp
		groupName string
		input     string
		expected  string
	}{
		{
			name:      "edition OLID",
			pattern:   olidPattern,
			groupName: "ID",
			input:     "OL7353617M",
			expected:  "OL7353617M",
		},
		{
			name:      "no match",
			pattern:   olidPattern,
			groupName: "ID",
			input:     "9780140328721",
			expected:  "",
		},
		{
			name:      "unknown group name",
			pattern:   olidPattern,
			groupName: "MISSING",
			input:     "OL7353617M",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ExtractNamedGroup(tt.pattern, tt.groupName, tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestMap tests the Map function.
func TestMap(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3}
	result := Map(input, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, result)

	empty := Map([]int{}, strconv.Itoa)
	assert.Empty(t, empty)
}
