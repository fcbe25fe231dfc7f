// Package goquery extracts forum posts from thread HTML using CSS selectors.
package goquery

import (
	"strings"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	"github.com/vecna/rush"
	"golang.org/x/net/html"
)

// Ensure PostExtractor implements rush.PostExtractor at compile time.
var _ rush.PostExtractor = (*PostExtractor)(nil)

// Selectors locate the regions of a post in thread markup.
type Selectors struct {
	// Post matches one element per reply (including the first post).
	Post string

	// Author matches the author-information region within a post.
	Author string

	// Username matches the display name within the author region.
	Username string

	// Time matches timestamp elements carrying a datetime attribute.
	Time string

	// Content matches the post body.
	Content string
}

// PhpBBSelectors match the markup of phpBB thread pages.
var PhpBBSelectors = Selectors{
	Post:     ".post",
	Author:   ".author",
	Username: ".username",
	Time:     "time",
	Content:  ".content",
}

// PostExtractor parses thread HTML into posts and converts each post body
// to markdown. Results are memoized in an optional rush.ContentCache keyed
// by the raw HTML.
type PostExtractor struct {
	converter rush.Converter
	cache     rush.ContentCache
	selectors Selectors

	parses atomic.Int64
}

// Option configures a PostExtractor.
type Option func(*PostExtractor)

// WithCache memoizes extraction results in cache.
func WithCache(cache rush.ContentCache) Option {
	return func(e *PostExtractor) {
		e.cache = cache
	}
}

// WithSelectors overrides the default phpBB selectors.
func WithSelectors(s Selectors) Option {
	return func(e *PostExtractor) {
		e.selectors = s
	}
}

// NewPostExtractor creates a PostExtractor that converts post bodies with converter.
func NewPostExtractor(converter rush.Converter, opts ...Option) *PostExtractor {
	e := &PostExtractor{
		converter: converter,
		selectors: PhpBBSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the posts of rawHTML in document order.
// A cached result for identical content is returned without re-parsing.
func (e *PostExtractor) Extract(rawHTML string) []rush.Post {
	if e.cache != nil {
		if posts, ok := e.cache.Get(rawHTML); ok {
			return posts
		}
	}

	posts := e.parse(rawHTML)

	if e.cache != nil {
		e.cache.Set(rawHTML, posts)
	}
	return posts
}

// ExtractSanitized returns the posts of rawHTML with inline base64 images
// replaced by rush.ImagePlaceholder. The cached result is not modified.
func (e *PostExtractor) ExtractSanitized(rawHTML string) []rush.Post {
	return rush.StripPostImages(e.Extract(rawHTML))
}

// Parses returns how many documents were actually parsed, i.e. the number
// of Extract calls that were not served from the cache.
func (e *PostExtractor) Parses() int64 {
	return e.parses.Load()
}

func (e *PostExtractor) parse(rawHTML string) []rush.Post {
	e.parses.Add(1)

	// Non-nil so an empty thread serializes as [] rather than null.
	posts := []rush.Post{}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return posts
	}
	doc := goquery.NewDocumentFromNode(root)

	doc.Find(e.selectors.Post).Each(func(_ int, sel *goquery.Selection) {
		posts = append(posts, e.extractPost(sel))
	})

	return posts
}

func (e *PostExtractor) extractPost(sel *goquery.Selection) rush.Post {
	author := sel.Find(e.selectors.Author).First()

	// The timestamp normally sits in the author line; some templates
	// render it elsewhere in the post.
	date := firstAttr(author.Find(e.selectors.Time), "datetime")
	if date == "" {
		date = firstAttr(sel.Find(e.selectors.Time), "datetime")
	}

	return rush.Post{
		Text:       e.convertBody(sel.Find(e.selectors.Content).First()),
		AuthorName: strings.TrimSpace(author.Find(e.selectors.Username).First().Text()),
		PostDate:   strings.TrimSpace(date),
	}
}

// convertBody returns the markdown of the body's inner markup.
// A missing body or a failed conversion yields an empty string.
func (e *PostExtractor) convertBody(body *goquery.Selection) string {
	if body.Length() == 0 {
		return ""
	}
	inner, err := body.Html()
	if err != nil {
		return ""
	}
	md, err := e.converter.Convert(inner)
	if err != nil {
		return ""
	}
	return md
}

// firstAttr returns the first non-empty value of attr in sel.
func firstAttr(sel *goquery.Selection, attr string) string {
	var value string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr(attr); ok && v != "" {
			value = v
			return false
		}
		return true
	})
	return value
}
