package mock

import (
	"net/url"

	"github.com/bamchi/hashscraper"
	"golang.org/x/net/html"
)

var _ hashscraper.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of hashscraper.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(doc *html.Node, pageURL *url.URL) (*hashscraper.ExtractedArticle, error)
}

func (e *ArticleExtractor) Extract(doc *html.Node, pageURL *url.URL) (*hashscraper.ExtractedArticle, error) {
	return e.ExtractFn(doc, pageURL)
}
