package utils

import (
	"bufio"
	"math"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// textContentTypePatterns is a slice of regular expressions that match content types
// considered to be text-based. This includes "text/*", "application/json", and
// "application/javascript" (Open Library serves JSONP callbacks with this type).
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile("^application/javascript$"),
}

// SafeInt64ToInt converts an int64 value to an int safely,
// ensuring that the value does not exceed the maximum limit of int.
func SafeInt64ToInt(val int64) int {
	if val > math.MaxInt {
		return math.MaxInt
	}

	if val < math.MinInt {
		return math.MinInt
	}

	return int(val)
}

// IsTextContentType checks if the given content type represents a text-based format.
// It supports common text content types like "text/*", "application/json", and "application/javascript".
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// ReadUniqueLinesFromFile reads a text file and returns a slice of unique non-empty lines.
// It skips empty lines and lines starting with '#', and ensures that each line
// in the returned slice is unique. Bulk lookup files use this format.
func ReadUniqueLinesFromFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	var (
		uniqueLines = make(map[string]struct{})
		lines       []string
		scanner     = bufio.NewScanner(file)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if _, exists := uniqueLines[line]; !exists {
			uniqueLines[line] = struct{}{}

			lines = append(lines, line)
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ExtractNamedGroup extracts the value of a named capturing group from a regex match.
// It returns an empty string if the group is not found or if there is no match.
func ExtractNamedGroup(re *regexp.Regexp, groupName, input string) string {
	match := re.FindStringSubmatch(input)
	if match == nil {
		return ""
	}

	// Map group names to their corresponding values.
	for i, name := range re.SubexpNames() {
		if name == groupName {
			return match[i]
		}
	}

	return ""
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}
