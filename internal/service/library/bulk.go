package library

import (
	"context"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"openlibrary-fetcher/internal/client/openlibrary"
	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/logger"
)

// FetchIdentifiers fetches every supplied identifier, rendering each result as it arrives.
// A failed lookup is reported and counted but does not stop the remaining fetches.
func (s *ServiceImpl) FetchIdentifiers(ctx context.Context, identifiers []string) error {
	s.markSessionStart()
	defer s.markSessionEnd()

	classified, err := s.identifierProcessor.ExtractLookupItems(ctx, identifiers)
	if err != nil {
		return err
	}

	records, bibkeys := s.dropUnknownItems(classified)
	if len(records) == 0 && len(bibkeys) == 0 {
		return ErrNoIdentifiers
	}

	logger.Infof(ctx, "Fetching %d record(s) and %d bibliographic key(s)", len(records), len(bibkeys))

	bar := s.newProgressBar(len(records), len(bibkeys))

	// Fetch single records one at a time.
	for _, item := range records {
		// Check if context was canceled (CTRL+C pressed) - stop immediately.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err = s.fetchLookupItem(ctx, item); err != nil {
			logger.Errorf(ctx, "Failed to fetch %s '%s': %v", item.Category, item.Value, err)
		}

		s.advanceProgressBar(ctx, bar)
	}

	// Fetch all bibliographic keys in a single batched request.
	if len(bibkeys) > 0 {
		if err = s.LookupBibkeys(ctx, s.buildBibkeys(bibkeys)); err != nil {
			logger.Errorf(ctx, "Failed to fetch bibliographic keys: %v", err)
		}

		s.advanceProgressBar(ctx, bar)
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return nil
}

// dropUnknownItems deduplicates the classified items and filters out
// identifiers that matched no known format, counting them as skipped.
func (s *ServiceImpl) dropUnknownItems(classified *ExtractLookupItemsResponse) (records, bibkeys []*LookupItem) {
	for _, item := range s.identifierProcessor.DeduplicateLookupItems(classified.Records) {
		if item.Category == LookupCategoryUnknown {
			s.recordSkipped(1)

			continue
		}

		records = append(records, item)
	}

	bibkeys = s.identifierProcessor.DeduplicateLookupItems(classified.Bibkeys)

	return records, bibkeys
}

// fetchLookupItem dispatches a single record lookup based on its category.
func (s *ServiceImpl) fetchLookupItem(ctx context.Context, item *LookupItem) error {
	//nolint:exhaustive // Bibliographic key categories are batched separately; unknowns are filtered earlier.
	switch item.Category {
	case LookupCategoryEdition:
		return s.LookupBook(ctx, item.Value)
	case LookupCategoryWork:
		return s.LookupWork(ctx, item.Value)
	case LookupCategoryAuthor:
		return s.LookupAuthor(ctx, item.Value)
	default:
		return s.recordFailure(item.Category, item.Raw, ErrUnknownIdentifier)
	}
}

// buildBibkeys converts classified items into the key syntax of the api/books endpoint.
func (s *ServiceImpl) buildBibkeys(items []*LookupItem) []string {
	bibkeys := make([]string, 0, len(items))

	for _, item := range items {
		var prefix string

		//nolint:exhaustive // Only bibliographic key categories reach this point.
		switch item.Category {
		case LookupCategoryISBN:
			prefix = openlibrary.BibkeyPrefixISBN
		case LookupCategoryLCCN:
			prefix = openlibrary.BibkeyPrefixLCCN
		case LookupCategoryOCLC:
			prefix = openlibrary.BibkeyPrefixOCLC
		default:
			continue
		}

		bibkeys = append(bibkeys, prefix+":"+item.Value)
	}

	return bibkeys
}

// newProgressBar creates a progress bar for the session, or nil when one would only get in the way.
// Progress bars are disabled for JSON output and for verbose log levels
// so the rendered output stays machine-readable.
func (s *ServiceImpl) newProgressBar(recordsCount, bibkeysCount int) *progressbar.ProgressBar {
	steps := recordsCount
	if bibkeysCount > 0 {
		steps++
	}

	const minStepsForProgressBar = 2

	if steps < minStepsForProgressBar ||
		s.cfg.OutputFormat != config.OutputFormatText ||
		logger.Level() < zap.InfoLevel {
		return nil
	}

	return progressbar.Default(int64(steps), "Fetching records")
}

// advanceProgressBar moves the progress bar forward by one step.
func (s *ServiceImpl) advanceProgressBar(ctx context.Context, bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}

	if err := bar.Add(1); err != nil {
		logger.Debugf(ctx, "Failed to advance progress bar: %v", err)
	}
}
