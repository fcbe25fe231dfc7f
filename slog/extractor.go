// Package slog provides logging decorators for rush services.
package slog

import (
	"log/slog"
	"time"

	"github.com/vecna/rush"
)

// Ensure LoggingExtractor implements rush.PostExtractor.
var _ rush.PostExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PostExtractor with logging.
type LoggingExtractor struct {
	next   rush.PostExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next rush.PostExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) Extract(html string) (posts []rush.Post) {
	defer func(begin time.Time) {
		e.log(html, posts, false, begin)
	}(time.Now())
	return e.next.Extract(html)
}

// ExtractSanitized delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) ExtractSanitized(html string) (posts []rush.Post) {
	defer func(begin time.Time) {
		e.log(html, posts, true, begin)
	}(time.Now())
	return e.next.ExtractSanitized(html)
}

func (e *LoggingExtractor) log(html string, posts []rush.Post, sanitized bool, begin time.Time) {
	e.logger.Info("extract",
		"bytes", len(html),
		"posts", len(posts),
		"sanitized", sanitized,
		"duration", time.Since(begin),
	)
}
