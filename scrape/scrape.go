package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bamchi/hashscraper"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchError is reported when a renderer fails without a message.
const DefaultFetchError = "Failed to scrape the page."

// Ensure Scraper implements hashscraper.Scraper at compile time.
var _ hashscraper.Scraper = (*Scraper)(nil)

// Scraper implements hashscraper.Scraper by rendering pages through a
// Renderer and converting them with an Extractor.
type Scraper struct {
	renderer    hashscraper.Renderer
	extractor   *Extractor
	mode        hashscraper.Mode
	concurrency int
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithMode sets the output mode. Defaults to hashscraper.ModeMarkdown.
func WithMode(mode hashscraper.Mode) ScraperOption {
	return func(s *Scraper) {
		s.mode = mode
	}
}

// WithConcurrency bounds the number of pages rendered at once.
// Zero or less renders every URL of a batch at once.
func WithConcurrency(n int) ScraperOption {
	return func(s *Scraper) {
		s.concurrency = n
	}
}

// NewScraper creates a new Scraper with the given dependencies.
func NewScraper(renderer hashscraper.Renderer, extractor *Extractor, opts ...ScraperOption) *Scraper {
	s := &Scraper{
		renderer:  renderer,
		extractor: extractor,
		mode:      hashscraper.ModeMarkdown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScrapeOne renders url and converts it. Render failures are returned as
// errors; extraction never fails.
func (s *Scraper) ScrapeOne(ctx context.Context, url string, wait hashscraper.WaitStrategy) (*hashscraper.PageResult, error) {
	page, err := s.render(ctx, url, wait)
	if err != nil {
		return nil, err
	}

	resolved := page.URL
	if resolved == "" {
		resolved = url
	}
	content := s.extractor.Extract(&hashscraper.PageContent{
		HTML:  page.HTML,
		URL:   resolved,
		Title: page.Title,
	}, s.mode)

	title := page.Title
	if title == "" {
		title = hashscraper.UntitledPage
	}

	return &hashscraper.PageResult{
		URL:         url,
		ResolvedURL: resolved,
		Success:     true,
		Title:       title,
		Content:     content,
		ContentHash: hashscraper.ContentHash(content),
	}, nil
}

// ScrapeAll renders and converts all urls concurrently and returns one
// result per URL in input order. A failing URL never affects the others.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, wait hashscraper.WaitStrategy) *hashscraper.BatchReport {
	results := make([]*hashscraper.PageResult, len(urls))

	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for i, u := range urls {
		g.Go(func() error {
			result, err := s.ScrapeOne(ctx, u, wait)
			if err != nil {
				result = &hashscraper.PageResult{
					URL:   u,
					Error: fetchErrorMessage(err),
				}
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return &hashscraper.BatchReport{Results: results}
}

// render calls the renderer, turning a panic into an error so that one
// misbehaving page cannot take down a batch.
func (s *Scraper) render(ctx context.Context, url string, wait hashscraper.WaitStrategy) (page *hashscraper.PageContent, err error) {
	defer func() {
		if r := recover(); r != nil {
			page, err = nil, fmt.Errorf("rendering %s: %v", url, r)
		}
	}()

	page, err = s.renderer.Render(ctx, url, wait)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, hashscraper.Errorf(hashscraper.EUNAVAILABLE, DefaultFetchError)
	}
	return page, nil
}

// ValidateURL returns an EINVALID error unless rawURL is an absolute
// http or https URL.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return hashscraper.Errorf(hashscraper.EINVALID, "invalid URL %q: must be an absolute http(s) URL", rawURL)
	}
	return nil
}

// ValidateURLs checks a batch before any fetch is attempted: it must hold
// between 1 and hashscraper.MaxBatchURLs valid URLs.
func ValidateURLs(urls []string) error {
	if len(urls) == 0 {
		return hashscraper.Errorf(hashscraper.EINVALID, "at least one URL is required")
	}
	if len(urls) > hashscraper.MaxBatchURLs {
		return hashscraper.Errorf(hashscraper.EINVALID, "too many URLs: %d (max %d)", len(urls), hashscraper.MaxBatchURLs)
	}
	for _, u := range urls {
		if err := ValidateURL(u); err != nil {
			return err
		}
	}
	return nil
}

func fetchErrorMessage(err error) string {
	if msg := hashscraper.ErrorMessage(err); msg != "" {
		return msg
	}
	return DefaultFetchError
}
