package mock

import "github.com/bamchi/hashscraper"

var _ hashscraper.Converter = (*Converter)(nil)

// Converter is a mock implementation of hashscraper.Converter.
type Converter struct {
	ConvertFn func(html string, pageURL string) (string, error)
}

func (c *Converter) Convert(html string, pageURL string) (string, error) {
	return c.ConvertFn(html, pageURL)
}
