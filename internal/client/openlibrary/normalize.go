package openlibrary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Result is the uniform envelope every operation returns.
// Upstream documents arrive in several shapes (list-style, keyed-map,
// single-object, bare array); all of them collapse into this structure.
type Result[T any] struct {
	// Total is the total number of matching items across all pages.
	Total int64 `json:"total"`
	// Items is the page of items, never nil.
	Items []T `json:"items"`
	// Links holds navigation links when the upstream listing provides them.
	Links map[string]string `json:"links,omitempty"`
	// Pagination describes the position of this page within the full set.
	Pagination Pagination `json:"pagination"`
}

// newSingleResult wraps one record into the uniform envelope.
func newSingleResult[T any](item T) *Result[T] {
	return &Result[T]{
		Total:      1,
		Items:      []T{item},
		Pagination: NewPagination(1, 1, 1),
	}
}

// newListResult wraps a page of records into the uniform envelope.
// A reported total smaller than the number of returned items is corrected upward,
// so the envelope never understates the set it describes.
func newListResult[T any](items []T, total int64, links map[string]string, page, perPage int) *Result[T] {
	if items == nil {
		items = []T{}
	}

	if total < int64(len(items)) {
		total = int64(len(items))
	}

	return &Result[T]{
		Total:      total,
		Items:      items,
		Links:      links,
		Pagination: NewPagination(page, perPage, total),
	}
}

// listMarkers maps the field carrying the item page to the field carrying the total count
// for each list-style document shape Open Library serves.
//
//nolint:gochecknoglobals // This is an immutable lookup table used as a constant.
var listMarkers = []struct {
	// ItemsField is the name of the field holding the page of items.
	ItemsField string
	// TotalField is the name of the field holding the total count.
	TotalField string
}{
	{ItemsField: "docs", TotalField: "numFound"},
	{ItemsField: "entries", TotalField: "size"},
	{ItemsField: "works", TotalField: "work_count"},
}

// NormalizeDocument reshapes an arbitrary upstream JSON document into the uniform envelope.
// Four shapes are recognized: list-style objects ({numFound,docs}, {size,entries},
// {work_count,works}), bibliographic-key maps ({"ISBN:...": {...}}), bare arrays,
// and plain single objects. Anything else yields ErrUnexpectedResponseFormat.
// The page and perPage arguments describe the window the document was requested with
// and feed the derived pagination.
func NormalizeDocument(data []byte, page, perPage int) (*Result[json.RawMessage], error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrUnexpectedResponseFormat)
	}

	// Bare array: the whole document is the item page.
	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponseFormat, err)
		}

		return newListResult(items, int64(len(items)), nil, page, perPage), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponseFormat, err)
	}

	if result, ok, err := normalizeListDocument(fields, page, perPage); ok {
		return result, err
	}

	if result, ok, err := normalizeBibkeyDocument(fields); ok {
		return result, err
	}

	if len(fields) == 0 {
		return nil, ErrRecordNotFound
	}

	// Single object: the whole document is the only item.
	return newSingleResult(json.RawMessage(trimmed)), nil
}

// normalizeListDocument handles the list-style shapes.
// The second return value reports whether the document matched one of them.
func normalizeListDocument(
	fields map[string]json.RawMessage,
	page, perPage int,
) (*Result[json.RawMessage], bool, error) {
	for _, marker := range listMarkers {
		rawItems, hasItems := fields[marker.ItemsField]
		rawTotal, hasTotal := fields[marker.TotalField]

		if !hasItems || !hasTotal {
			continue
		}

		var items []json.RawMessage
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return nil, true, fmt.Errorf("%w: field %q is not an array", ErrUnexpectedResponseFormat, marker.ItemsField)
		}

		var total int64
		if err := json.Unmarshal(rawTotal, &total); err != nil {
			return nil, true, fmt.Errorf("%w: field %q is not a number", ErrUnexpectedResponseFormat, marker.TotalField)
		}

		var links map[string]string
		if rawLinks, hasLinks := fields["links"]; hasLinks {
			// Links are informational, a malformed links object does not fail the whole document.
			_ = json.Unmarshal(rawLinks, &links)
		}

		return newListResult(items, total, links, page, perPage), true, nil
	}

	return nil, false, nil
}

// normalizeBibkeyDocument handles maps keyed by bibliographic keys like "ISBN:9780140328721".
// The second return value reports whether the document matched that shape.
// Items are ordered by key so the result is deterministic.
func normalizeBibkeyDocument(fields map[string]json.RawMessage) (*Result[json.RawMessage], bool, error) {
	if len(fields) == 0 {
		return nil, false, nil
	}

	keys := make([]string, 0, len(fields))

	for key, value := range fields {
		if !isBibkey(key) || !isJSONObject(value) {
			return nil, false, nil
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	items := make([]json.RawMessage, 0, len(keys))
	for _, key := range keys {
		items = append(items, fields[key])
	}

	return newListResult(items, int64(len(items)), nil, 1, len(items)), true, nil
}

// isBibkey reports whether the given map key looks like a bibliographic key,
// i.e. a known identifier prefix followed by a colon and a value.
func isBibkey(key string) bool {
	prefix, value, found := strings.Cut(key, ":")
	if !found || value == "" {
		return false
	}

	switch prefix {
	case BibkeyPrefixISBN, BibkeyPrefixLCCN, BibkeyPrefixOCLC, BibkeyPrefixOLID:
		return true
	default:
		return false
	}
}

// isJSONObject reports whether the raw value is a JSON object.
func isJSONObject(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)

	return len(trimmed) > 0 && trimmed[0] == '{'
}

// olidFromKey extracts the bare identifier from a record site path,
// e.g. "/books/OL7353617M" yields "OL7353617M".
func olidFromKey(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}

	return key
}
