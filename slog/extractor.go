package slog

import (
	"log/slog"
	"time"

	"github.com/pbialon/coursetoc"
)

// Ensure LoggingExtractor implements coursetoc.Extractor.
var _ coursetoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   coursetoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next coursetoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(rawHTML string) (sections []coursetoc.Section, err error) {
	defer func(begin time.Time) {
		e.logger.Info("section extraction",
			"count", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(rawHTML)
}
