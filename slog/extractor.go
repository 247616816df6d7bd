package slog

import (
	"log/slog"
	"time"

	"github.com/awalczyk/linkrot"
)

// Ensure LoggingExtractor implements linkrot.LinkExtractor.
var _ linkrot.LinkExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a LinkExtractor with debug logging.
type LoggingExtractor struct {
	next   linkrot.LinkExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkrot.LinkExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractLinks logs the extraction outcome and delegates to the wrapped
// extractor.
func (e *LoggingExtractor) ExtractLinks(html string, baseURL string) (links []linkrot.ParsedLink, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"base", baseURL,
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(html, baseURL)
}
