package mock

import (
	"context"

	"github.com/bamchi/hashscraper"
)

var _ hashscraper.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of hashscraper.Scraper.
type Scraper struct {
	ScrapeOneFn func(ctx context.Context, url string, wait hashscraper.WaitStrategy) (*hashscraper.PageResult, error)
	ScrapeAllFn func(ctx context.Context, urls []string, wait hashscraper.WaitStrategy) *hashscraper.BatchReport
}

func (s *Scraper) ScrapeOne(ctx context.Context, url string, wait hashscraper.WaitStrategy) (*hashscraper.PageResult, error) {
	return s.ScrapeOneFn(ctx, url, wait)
}

func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, wait hashscraper.WaitStrategy) *hashscraper.BatchReport {
	return s.ScrapeAllFn(ctx, urls, wait)
}
