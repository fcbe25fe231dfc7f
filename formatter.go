package rush

import (
	"strconv"
	"strings"
)

// FormatPosts renders a thread as markdown for display.
// Each post gets a header with its position, author and date when known.
// Posts are separated by blank lines.
func FormatPosts(posts []Post) string {
	if len(posts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(posts))
	for i, p := range posts {
		header := "## Post " + strconv.Itoa(i+1)
		if p.AuthorName != "" {
			header += " by " + p.AuthorName
		}
		if p.PostDate != "" {
			header += " (" + p.PostDate + ")"
		}
		parts = append(parts, header+"\n"+p.Text)
	}

	return strings.Join(parts, "\n\n")
}
