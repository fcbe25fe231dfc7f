package mock

import "github.com/vecna/rush"

var _ rush.PostExtractor = (*PostExtractor)(nil)

// PostExtractor is a mock implementation of rush.PostExtractor.
type PostExtractor struct {
	ExtractFn          func(html string) []rush.Post
	ExtractSanitizedFn func(html string) []rush.Post
}

func (e *PostExtractor) Extract(html string) []rush.Post {
	return e.ExtractFn(html)
}

func (e *PostExtractor) ExtractSanitized(html string) []rush.Post {
	return e.ExtractSanitizedFn(html)
}

var _ rush.ContentCache = (*ContentCache)(nil)

// ContentCache is a mock implementation of rush.ContentCache.
type ContentCache struct {
	GetFn func(content string) ([]rush.Post, bool)
	SetFn func(content string, posts []rush.Post)
}

func (c *ContentCache) Get(content string) ([]rush.Post, bool) {
	return c.GetFn(content)
}

func (c *ContentCache) Set(content string, posts []rush.Post) {
	c.SetFn(content, posts)
}
