package mock

import "github.com/vecna/rush"

var _ rush.Converter = (*Converter)(nil)

// Converter is a mock implementation of rush.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
