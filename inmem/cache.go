// Package inmem provides in-memory implementations of rush services.
package inmem

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"sync"

	"github.com/vecna/rush"
)

// Ensure Cache implements rush.ContentCache at compile time.
var _ rush.ContentCache = (*Cache)(nil)

// Cache is a content-addressed rush.ContentCache. Entries are keyed by the
// SHA-256 digest of the raw document, never by file name.
//
// By default the cache is unbounded and entries live for the lifetime of
// the Cache. WithMaxEntries bounds it with least-recently-used eviction.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List // front is most recently used
	maxEntries int
}

type cacheEntry struct {
	key   string
	posts []rush.Post
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries bounds the cache to n documents. Zero or a negative n
// means unbounded.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.maxEntries = max(n, 0)
	}
}

// NewCache creates an empty Cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the hex-encoded SHA-256 digest used to address content.
func Key(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Get returns a copy of the posts stored for content.
func (c *Cache) Get(content string) ([]rush.Post, bool) {
	key := Key(content)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return slices.Clone(el.Value.(*cacheEntry).posts), true
}

// Set stores a copy of posts for content, replacing any previous entry.
func (c *Cache) Set(content string, posts []rush.Post) {
	key := Key(content)
	posts = slices.Clone(posts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).posts = posts
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, posts: posts})

	for c.maxEntries > 0 && c.order.Len() > c.maxEntries {
		c.evictOldest()
	}
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// evictOldest removes the least recently used entry. Caller holds mu.
func (c *Cache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.entries, el.Value.(*cacheEntry).key)
}
