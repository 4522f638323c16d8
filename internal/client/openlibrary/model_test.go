package openlibrary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestText_UnmarshalJSON tests both upstream encodings of textual fields.
func TestText_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{
			name:     "plain string",
			input:    `"A cunning fox outwits three farmers."`,
			expected: "A cunning fox outwits three farmers.",
		},
		{
			name:     "typed text object",
			input:    `{"type": "/type/text", "value": "A cunning fox outwits three farmers."}`,
			expected: "A cunning fox outwits three farmers.",
		},
		{
			name:     "empty string",
			input:    `""`,
			expected: "",
		},
		{
			name:        "unsupported shape",
			input:       `[1, 2, 3]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var text Text

			err := json.Unmarshal([]byte(tt.input), &text)
			if tt.expectError {
				require.ErrorIs(t, err, ErrUnexpectedResponseFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, text.Value)
			assert.Equal(t, tt.expected, text.String())
		})
	}
}

// TestText_MarshalJSON tests that Text always serializes to the plain string form.
func TestText_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Text{Value: "some description"})
	require.NoError(t, err)
	assert.JSONEq(t, `"some description"`, string(data))
}

// TestOLIDAccessors tests extraction of bare identifiers from record site paths.
func TestOLIDAccessors(t *testing.T) {
	t.Parallel()

	edition := &Edition{Key: "/books/OL7353617M"}
	assert.Equal(t, "OL7353617M", edition.OLID())

	work := &Work{Key: "/works/OL45883W"}
	assert.Equal(t, "OL45883W", work.OLID())

	author := &Author{Key: "/authors/OL34184A"}
	assert.Equal(t, "OL34184A", author.OLID())

	// A bare key without a path prefix is returned unchanged.
	bare := &Author{Key: "OL34184A"}
	assert.Equal(t, "OL34184A", bare.OLID())
}

// TestEdition_DecodesRealPayload tests decoding of a realistic edition document.
func TestEdition_DecodesRealPayload(t *testing.T) {
	t.Parallel()

	payload := `{
		"key": "/books/OL7353617M",
		"title": "Fantastic Mr. Fox",
		"authors": [{"key": "/authors/OL34184A"}],
		"works": [{"key": "/works/OL45883W"}],
		"publishers": ["Puffin"],
		"publish_date": "October 1, 1988",
		"number_of_pages": 96,
		"isbn_10": ["0140328726"],
		"isbn_13": ["9780140328721"],
		"covers": [8739161]
	}`

	var edition Edition
	require.NoError(t, json.Unmarshal([]byte(payload), &edition))

	assert.Equal(t, "Fantastic Mr. Fox", edition.Title)
	assert.Equal(t, int64(96), edition.NumberOfPages)
	require.Len(t, edition.Authors, 1)
	assert.Equal(t, "/authors/OL34184A", edition.Authors[0].Key)
	assert.Equal(t, []int64{8739161}, edition.Covers)
}
