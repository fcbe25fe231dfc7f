package rush

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment (typically the inner markup of a
	// post body) into Markdown. Headings, emphasis, links and lists are
	// preserved; raw tags are removed.
	Convert(html string) (string, error)
}
