package rush

// Post is a single forum message extracted from a thread dump.
type Post struct {
	// Text is the post body converted to markdown.
	Text string `json:"text"`

	// AuthorName is the display name of the author. Empty when the
	// post has no author region.
	AuthorName string `json:"authorName"`

	// PostDate is the raw datetime attribute of the post's time element.
	PostDate string `json:"postDate,omitempty"`
}

// PostExtractor parses thread HTML into an ordered sequence of posts.
//
// Extraction never fails: markup without post elements yields an empty
// slice, and missing optional fields yield empty strings.
type PostExtractor interface {
	// Extract returns the posts of the document in document order.
	Extract(html string) []Post

	// ExtractSanitized is like Extract but replaces every inline base64
	// image in the post text with a placeholder (see StripInlineImages).
	ExtractSanitized(html string) []Post
}

// ContentCache memoizes extraction results by the content they were
// computed from. Two documents with identical bytes share one entry
// regardless of the file they came from.
//
// Implementations must be safe for concurrent use.
type ContentCache interface {
	// Get returns the posts stored for content, if any.
	Get(content string) ([]Post, bool)

	// Set stores posts for content, replacing any previous entry.
	Set(content string, posts []Post)
}
