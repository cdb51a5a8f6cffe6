// Package scrape turns rendered pages into normalized documents. It
// coordinates structural extraction, boilerplate pruning, Markdown or text
// emission and normalization, and fans batches of URLs out over a Renderer.
package scrape

import (
	"io"
	"log/slog"
	"net/url"
	"strings"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/bamchi/hashscraper"
	"github.com/bamchi/hashscraper/goquery"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Sentinel documents returned when a page cannot be converted.
const (
	UnableToExtract  = "Unable to extract content."
	ConversionFailed = "An error occurred during content conversion."
)

// Extractor converts a rendered page into a normalized document. It prefers
// structural extraction and falls back to pruning boilerplate from the full
// body. Extractor is safe for concurrent use when its collaborators are.
type Extractor struct {
	articles    hashscraper.ArticleExtractor
	converter   hashscraper.Converter
	boilerplate *goquery.Pruner
	nonContent  *goquery.Pruner
	logger      *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithLogger sets the logger used to report degraded extractions.
// Defaults to a logger that discards output.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithPruner replaces the boilerplate pruner used on the fallback path.
func WithPruner(p *goquery.Pruner) ExtractorOption {
	return func(e *Extractor) {
		e.boilerplate = p
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(articles hashscraper.ArticleExtractor, converter hashscraper.Converter, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		articles:    articles,
		converter:   converter,
		boilerplate: goquery.NewBoilerplatePruner(),
		nonContent:  goquery.NewPruner(goquery.NonContentSelectors...),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the main content of page as a normalized document in the
// given mode. It never fails: conversion problems yield a sentinel document.
func (e *Extractor) Extract(page *hashscraper.PageContent, mode hashscraper.Mode) (doc string) {
	if page == nil {
		return UnableToExtract
	}
	pageURL := page.URL

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("conversion panic", "url", pageURL, "panic", r)
			doc = ConversionFailed
		}
	}()

	doc, err := e.extract(page, mode)
	if err != nil {
		e.logger.Warn("conversion failed", "url", pageURL, "err", err)
		return ConversionFailed
	}
	return doc
}

func (e *Extractor) extract(page *hashscraper.PageContent, mode hashscraper.Mode) (string, error) {
	root, err := html.Parse(strings.NewReader(page.HTML))
	if err != nil {
		return "", err
	}

	pageURL, err := url.Parse(page.URL)
	if err != nil || !pageURL.IsAbs() {
		pageURL = nil
	}

	document := pq.NewDocumentFromNode(root)
	goquery.ResolveURLs(document.Selection, pageURL)

	if article := e.extractArticle(root, pageURL); article != nil {
		if mode == hashscraper.ModeText {
			text, err := e.text(article.ContentHTML)
			if err != nil {
				return "", err
			} else if text != "" {
				return text, nil
			}
			if strings.TrimSpace(article.TextContent) != "" {
				return hashscraper.Normalize(hashscraper.CleanText(article.TextContent)), nil
			}
		} else if strings.TrimSpace(article.ContentHTML) != "" {
			return e.markdown(article.ContentHTML, pageURL)
		}
	}

	e.logger.Debug("structural extraction found no article, pruning body", "url", page.URL)

	body := document.Find("body")
	if body.Length() == 0 {
		return UnableToExtract, nil
	}
	e.boilerplate.Prune(body)

	if mode == hashscraper.ModeText {
		return e.flatten(body), nil
	}

	bodyHTML, err := body.Html()
	if err != nil {
		return "", err
	}
	return e.markdown(bodyHTML, pageURL)
}

// extractArticle runs structural extraction on a copy of root so the
// original tree stays intact for the fallback path.
func (e *Extractor) extractArticle(root *html.Node, pageURL *url.URL) (article *hashscraper.ExtractedArticle) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("structural extraction panic", "panic", r)
			article = nil
		}
	}()

	article, err := e.articles.Extract(dom.Clone(root, true), pageURL)
	if err != nil {
		e.logger.Debug("structural extraction failed", "err", err)
		return nil
	}
	if article.IsEmpty() {
		return nil
	}
	return article
}

// text flattens extracted article HTML the same way as the fallback path.
func (e *Extractor) text(contentHTML string) (string, error) {
	root, err := html.Parse(strings.NewReader(contentHTML))
	if err != nil {
		return "", err
	}
	return e.flatten(pq.NewDocumentFromNode(root).Selection), nil
}

func (e *Extractor) flatten(sel *pq.Selection) string {
	e.nonContent.Prune(sel)
	return hashscraper.Normalize(hashscraper.CleanText(goquery.Flatten(sel)))
}

func (e *Extractor) markdown(contentHTML string, pageURL *url.URL) (string, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return "", nil
	}

	var base string
	if pageURL != nil {
		base = pageURL.String()
	}

	md, err := e.converter.Convert(contentHTML, base)
	if err != nil {
		return "", err
	}
	return hashscraper.Normalize(md), nil
}
