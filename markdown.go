package rush

import "regexp"

// ImagePlaceholder replaces the URL of inline base64 images.
const ImagePlaceholder = "BASE64-IMAGE-REMOVED"

// inlineImageRe matches markdown images whose URL is a base64 data URI with
// an image media type, with or without parameters before ;base64. Alt text
// may contain backslash escapes such as \] but never an unescaped closing
// bracket, so a regular image earlier on the same line is never swallowed
// into a match.
var inlineImageRe = regexp.MustCompile(`!\[((?:\\.|[^\]\\])*?)\]\(data:image/[^)\s]*?;base64,[^)]*?\)`)

// StripInlineImages replaces every `![alt](data:image/*;base64,...)` in
// markdown with `![alt](BASE64-IMAGE-REMOVED)`. Alt text is preserved and
// images with regular URLs are left alone. Applying it twice is the same
// as applying it once.
func StripInlineImages(markdown string) string {
	return inlineImageRe.ReplaceAllString(markdown, "![${1}]("+ImagePlaceholder+")")
}

// StripPostImages applies StripInlineImages to the text of every post.
// The input slice is not modified.
func StripPostImages(posts []Post) []Post {
	if posts == nil {
		return nil
	}
	out := make([]Post, len(posts))
	for i, p := range posts {
		p.Text = StripInlineImages(p.Text)
		out[i] = p
	}
	return out
}
