// Package readability implements hashscraper.ArticleExtractor with the
// Mozilla Readability algorithm.
package readability

import (
	"net/url"

	"github.com/bamchi/hashscraper"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Extractor implements hashscraper.ArticleExtractor at compile time.
var _ hashscraper.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of doc with links and media resolved
// against pageURL. Readability works on its own clone, doc is not modified.
func (e *Extractor) Extract(doc *html.Node, pageURL *url.URL) (*hashscraper.ExtractedArticle, error) {
	if doc == nil {
		return nil, hashscraper.Errorf(hashscraper.EINVALID, "empty document")
	}
	if pageURL == nil {
		pageURL = &url.URL{}
	}

	article, err := readability.FromDocument(doc, pageURL)
	if err != nil {
		return nil, err
	}

	return &hashscraper.ExtractedArticle{
		ContentHTML: article.Content,
		TextContent: article.TextContent,
	}, nil
}
