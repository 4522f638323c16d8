package library

//go:generate $MOCKGEN -source=identifier_processor.go -destination=mocks/identifier_processor_mock.go

import (
	"context"
	"regexp"
	"strings"

	"openlibrary-fetcher/internal/logger"
	"openlibrary-fetcher/internal/utils"
)

// IdentifierProcessor defines the interface for classifying raw identifiers into lookup items.
type IdentifierProcessor interface {
	// ExtractLookupItems classifies a list of identifiers into record lookups and bibliographic key lookups.
	ExtractLookupItems(ctx context.Context, identifiers []string) (*ExtractLookupItemsResponse, error)
	// DeduplicateLookupItems removes duplicate LookupItems based on their category and value.
	DeduplicateLookupItems(items []*LookupItem) []*LookupItem
}

// ExtractLookupItemsResponse represents the result of classifying identifiers.
// It separates identifiers by the endpoint that serves them.
type ExtractLookupItemsResponse struct {
	// Records contains edition, work, and author OLIDs fetched one record at a time.
	Records []*LookupItem
	// Bibkeys contains ISBN, LCCN, and OCLC identifiers
	// that are fetched together through the bibliographic key endpoint.
	Bibkeys []*LookupItem
}

// IdentifierProcessorImpl implements the IdentifierProcessor interface.
type IdentifierProcessorImpl struct{}

// defaultTextExtension is the default file extension for identifier list files.
const defaultTextExtension = ".txt"

// categoriesByPatterns maps identifier patterns to lookup categories.
// Prefixed forms (OLID:, ISBN:, LCCN:, OCLC:) follow the bibliographic
// key syntax of the api/books endpoint; bare OLIDs and ISBNs are also accepted.
//
//nolint:gochecknoglobals,lll // This is a justified global variable: immutable data, performance optimization, and reusability.
var categoriesByPatterns = []struct {
	// Pattern is the regex pattern to match identifiers.
	Pattern *regexp.Regexp
	// Category is the lookup category for matched identifiers.
	Category LookupCategory
}{
	{regexp.MustCompile(`(?i)^(?:OLID:)?(?<ID>OL\d+M)$`), LookupCategoryEdition},
	{regexp.MustCompile(`(?i)^(?:OLID:)?(?<ID>OL\d+W)$`), LookupCategoryWork},
	{regexp.MustCompile(`(?i)^(?:OLID:)?(?<ID>OL\d+A)$`), LookupCategoryAuthor},
	{regexp.MustCompile(`(?i)^(?:ISBN:)?(?<ID>(?:\d[- ]?){12}\d)$`), LookupCategoryISBN},
	{regexp.MustCompile(`(?i)^(?:ISBN:)?(?<ID>(?:\d[- ]?){9}[\dX])$`), LookupCategoryISBN},
	{regexp.MustCompile(`(?i)^LCCN:(?<ID>[a-z0-9]+)$`), LookupCategoryLCCN},
	{regexp.MustCompile(`(?i)^OCLC:(?<ID>\d+)$`), LookupCategoryOCLC},
}

// NewIdentifierProcessor creates and returns a new instance of IdentifierProcessorImpl.
func NewIdentifierProcessor() IdentifierProcessor {
	return &IdentifierProcessorImpl{}
}

// ExtractLookupItems classifies a list of identifiers into record lookups and bibliographic key lookups.
func (ip *IdentifierProcessorImpl) ExtractLookupItems(
	ctx context.Context,
	identifiers []string,
) (*ExtractLookupItemsResponse, error) {
	// Process and flatten identifiers to handle text files containing multiple identifiers.
	identifiers, err := ip.processAndFlattenIdentifiers(identifiers)
	if err != nil {
		return nil, err
	}

	var (
		records []*LookupItem
		bibkeys []*LookupItem
	)

	// Iterate through each identifier and categorize it.
	for _, identifier := range identifiers {
		item := ip.parseLookupItem(identifier)

		// Categorize the item based on its type.
		switch item.Category {
		case LookupCategoryEdition, LookupCategoryWork, LookupCategoryAuthor:
			records = append(records, item)
		case LookupCategoryISBN, LookupCategoryLCCN, LookupCategoryOCLC:
			bibkeys = append(bibkeys, item)
		case LookupCategoryUnknown:
			logger.Warnf(ctx, "Unknown identifier: %s", identifier)

			records = append(records, item)
		}
	}

	return &ExtractLookupItemsResponse{
		Records: records,
		Bibkeys: bibkeys,
	}, nil
}

// DeduplicateLookupItems removes duplicate LookupItems based on their category and value.
func (ip *IdentifierProcessorImpl) DeduplicateLookupItems(items []*LookupItem) []*LookupItem {
	// Use a map to track unique items.
	uniqueItems := make(map[ShortLookupItem]struct{}, len(items))
	result := make([]*LookupItem, 0, len(items))

	// Iterate through items and add only unique ones to the result.
	for _, item := range items {
		key := ShortLookupItem{Category: item.Category, Value: item.Value}
		if _, ok := uniqueItems[key]; ok {
			continue
		}

		uniqueItems[key] = struct{}{}

		result = append(result, item)
	}

	return result
}

func (ip *IdentifierProcessorImpl) parseLookupItem(identifier string) *LookupItem {
	// Match the identifier against each pattern to determine its category.
	for _, p := range categoriesByPatterns {
		if value := utils.ExtractNamedGroup(p.Pattern, "ID", identifier); value != "" {
			return &LookupItem{Category: p.Category, Raw: identifier, Value: ip.canonicalizeValue(p.Category, value)}
		}
	}

	// If no pattern matches, return an item with an unknown category.
	return &LookupItem{
		Category: LookupCategoryUnknown,
		Raw:      identifier,
		Value:    "",
	}
}

// canonicalizeValue normalizes an extracted identifier value.
// OLIDs are upper-cased, ISBNs lose their separators, and the ISBN-10 check character is upper-cased.
func (ip *IdentifierProcessorImpl) canonicalizeValue(category LookupCategory, value string) string {
	switch category {
	case LookupCategoryEdition, LookupCategoryWork, LookupCategoryAuthor:
		return strings.ToUpper(value)
	case LookupCategoryISBN:
		value = strings.NewReplacer("-", "", " ", "").Replace(value)

		return strings.ToUpper(value)
	case LookupCategoryLCCN:
		return strings.ToLower(value)
	case LookupCategoryOCLC, LookupCategoryUnknown:
		return value
	default:
		return value
	}
}

func (ip *IdentifierProcessorImpl) processAndFlattenIdentifiers(identifiers []string) ([]string, error) {
	var (
		// Track processed identifiers.
		processedSet = make(map[string]struct{})
		// Track processed text files.
		processedTextFiles = make(map[string]struct{})
		// Store the final list of identifiers.
		processedIdentifiers []string
	)

	for _, identifier := range identifiers {
		identifier = strings.TrimSpace(identifier)
		if identifier == "" {
			continue
		}

		// If the identifier is not a text file, add it directly to the processed list.
		if !strings.HasSuffix(identifier, defaultTextExtension) {
			if _, ok := processedSet[identifier]; ok {
				continue
			}

			processedSet[identifier] = struct{}{}

			processedIdentifiers = append(processedIdentifiers, identifier)

			continue
		}

		// Skip already processed text files.
		if _, exists := processedTextFiles[identifier]; exists {
			continue
		}

		// Read unique lines from the text file.
		lines, err := utils.ReadUniqueLinesFromFile(identifier)
		if err != nil {
			return nil, err
		}

		// Add each line (identifier) from the text file to the processed list.
		for _, line := range lines {
			if _, ok := processedSet[line]; ok {
				continue
			}

			processedSet[line] = struct{}{}

			processedIdentifiers = append(processedIdentifiers, line)
		}

		// Mark the text file as processed.
		processedTextFiles[identifier] = struct{}{}
	}

	return processedIdentifiers, nil
}
