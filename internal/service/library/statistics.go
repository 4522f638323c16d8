package library

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"openlibrary-fetcher/internal/logger"
)

// summarySeparator visually frames the fetch summary.
const summarySeparator = "═══════════════════════════════════════════════════════════════"

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// PrintFetchSummary prints a formatted summary of fetch statistics.
func (s *ServiceImpl) PrintFetchSummary(ctx context.Context) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	stats := s.stats

	// If nothing was processed, don't print a summary.
	if stats.RecordsFetched == 0 && stats.LookupsFailed == 0 && stats.IdentifiersSkipped == 0 {
		return
	}

	// Check if the context was canceled (CTRL+C or timeout).
	wasInterrupted := ctx.Err() != nil

	s.printSummaryHeader(ctx, wasInterrupted)
	s.printFetchStatistics(ctx, stats)
	s.printSessionDuration(ctx, stats)

	logger.Info(ctx, summarySeparator)

	s.printErrorDetails(ctx, stats)
	s.printFinalMessage(ctx, wasInterrupted, stats)
}

// printSummaryHeader prints the summary header.
func (s *ServiceImpl) printSummaryHeader(ctx context.Context, wasInterrupted bool) {
	logger.Info(ctx, "")
	logger.Info(ctx, summarySeparator)

	if wasInterrupted {
		logger.Info(ctx, "              FETCH SUMMARY (Interrupted)")
	} else {
		logger.Info(ctx, "                     FETCH SUMMARY")
	}

	logger.Info(ctx, summarySeparator)
}

// printFetchStatistics prints the record counters.
func (s *ServiceImpl) printFetchStatistics(ctx context.Context, stats *FetchStatistics) {
	logger.Infof(ctx, "Records Fetched:  %s", humanize.Comma(stats.RecordsFetched))

	if stats.LookupsFailed > 0 {
		logger.Infof(ctx, "Lookups Failed:   %s", humanize.Comma(stats.LookupsFailed))
	}

	if stats.IdentifiersSkipped > 0 {
		logger.Infof(ctx, "Skipped:          %s (unrecognized identifiers)", humanize.Comma(stats.IdentifiersSkipped))
	}

	// Success rate.
	totalLookups := stats.RecordsFetched + stats.LookupsFailed
	if totalLookups > 0 && stats.LookupsFailed > 0 {
		successRate := float64(stats.RecordsFetched) / float64(totalLookups) * 100
		logger.Infof(ctx, "Success Rate:     %.1f%%", successRate)
	}
}

// printSessionDuration prints how long the session took.
func (s *ServiceImpl) printSessionDuration(ctx context.Context, stats *FetchStatistics) {
	if stats.StartTime.IsZero() || stats.EndTime.IsZero() {
		return
	}

	duration := stats.EndTime.Sub(stats.StartTime)

	// Only show if duration is meaningful (> 100ms).
	if duration > 100*time.Millisecond {
		logger.Infof(ctx, "Duration:         %s", formatDuration(duration))
	}
}

// printErrorDetails prints detailed error information if any errors occurred.
func (s *ServiceImpl) printErrorDetails(ctx context.Context, stats *FetchStatistics) {
	if len(stats.Errors) == 0 {
		return
	}

	logger.Info(ctx, "")
	logger.Errorf(ctx, "ERRORS ENCOUNTERED: %d", len(stats.Errors))

	for i := range stats.Errors {
		logger.Info(ctx, "")
		logger.Errorf(ctx, "  [%d] %s: %s", i+1, stats.Errors[i].Category, stats.Errors[i].Identifier)
		logger.Errorf(ctx, "      Error: %s", stats.Errors[i].ErrorMessage)
	}

	logger.Info(ctx, "")
	logger.Info(ctx, summarySeparator)
}

// printFinalMessage prints a helpful message based on fetch results.
func (s *ServiceImpl) printFinalMessage(ctx context.Context, wasInterrupted bool, stats *FetchStatistics) {
	switch {
	case wasInterrupted:
		logger.Info(ctx, "")
		logger.Warn(ctx, "Fetch interrupted by user (CTRL+C).")

		if stats.RecordsFetched > 0 {
			logger.Infof(ctx, "Successfully fetched %d record(s) before interruption.", stats.RecordsFetched)
		}
	case stats.LookupsFailed > 0:
		logger.Info(ctx, "")
		logger.Warnf(ctx, "%d lookup(s) failed. See detailed error log above.", stats.LookupsFailed)
	case stats.RecordsFetched > 0:
		logger.Info(ctx, "")
		logger.Info(ctx, "All lookups completed successfully!")
	}
}
