package slog

import (
	"log/slog"

	"github.com/vecna/rush"
)

// Ensure LoggingCache implements rush.ContentCache.
var _ rush.ContentCache = (*LoggingCache)(nil)

// LoggingCache wraps a ContentCache with debug logging of hits and misses.
type LoggingCache struct {
	next   rush.ContentCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next rush.ContentCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

func (c *LoggingCache) Get(content string) ([]rush.Post, bool) {
	posts, ok := c.next.Get(content)
	if ok {
		c.logger.Debug("cache hit", "bytes", len(content), "posts", len(posts))
	} else {
		c.logger.Debug("cache miss", "bytes", len(content))
	}
	return posts, ok
}

func (c *LoggingCache) Set(content string, posts []rush.Post) {
	c.next.Set(content, posts)
	c.logger.Debug("cache set", "bytes", len(content), "posts", len(posts))
}
