package hashscraper

import (
	"net/url"

	"golang.org/x/net/html"
)

// ExtractedArticle holds the main content isolated by structural extraction.
type ExtractedArticle struct {
	// ContentHTML is the main content as clean HTML.
	ContentHTML string

	// TextContent is the plain text of the main content.
	TextContent string
}

// IsEmpty reports whether the article carries no usable content.
func (a *ExtractedArticle) IsEmpty() bool {
	return a == nil || (isBlank(a.ContentHTML) && isBlank(a.TextContent))
}

// ArticleExtractor isolates the main content of a document, removing
// boilerplate.
type ArticleExtractor interface {
	// Extract returns the main content of doc. Implementations may mutate
	// doc; callers pass a copy when they need the original afterwards.
	// A nil article or an error means no article was found.
	Extract(doc *html.Node, pageURL *url.URL) (*ExtractedArticle, error)
}
