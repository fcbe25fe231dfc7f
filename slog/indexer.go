package slog

import (
	"log/slog"
	"time"

	"github.com/vecna/rush"
)

// Ensure LoggingIndexer implements rush.FileIndexer.
var _ rush.FileIndexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps a FileIndexer with logging.
type LoggingIndexer struct {
	next   rush.FileIndexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next rush.FileIndexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// SortedNames delegates to the wrapped indexer and logs the file count.
func (i *LoggingIndexer) SortedNames(dir string) (names []string, err error) {
	defer func(begin time.Time) {
		i.logger.Info("sorted names",
			"dir", dir,
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.SortedNames(dir)
}

// GetByIndex delegates to the wrapped indexer and logs the resolved name.
func (i *LoggingIndexer) GetByIndex(dir string, n int) (name string, err error) {
	defer func(begin time.Time) {
		i.logger.Info("get by index",
			"dir", dir,
			"index", n,
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.GetByIndex(dir, n)
}

// Entries delegates to the wrapped indexer and logs the file count.
func (i *LoggingIndexer) Entries(dir string) (entries []rush.FileEntry, err error) {
	defer func(begin time.Time) {
		i.logger.Info("entries",
			"dir", dir,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Entries(dir)
}
