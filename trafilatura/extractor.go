// Package trafilatura implements hashscraper.ArticleExtractor with
// go-trafilatura, an alternative to readability that copes better with
// documentation-style pages.
package trafilatura

import (
	"bytes"
	"net/url"

	"github.com/bamchi/hashscraper"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements hashscraper.ArticleExtractor at compile time.
var _ hashscraper.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of doc.
func (e *Extractor) Extract(doc *html.Node, pageURL *url.URL) (*hashscraper.ExtractedArticle, error) {
	if doc == nil {
		return nil, hashscraper.Errorf(hashscraper.EINVALID, "empty document")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    pageURL,
	}

	result, err := trafilatura.ExtractDocument(doc, opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &hashscraper.ExtractedArticle{
		ContentHTML: contentHTML,
		TextContent: result.ContentText,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
