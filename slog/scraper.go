package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bamchi/hashscraper"
	"github.com/google/uuid"
)

// Ensure LoggingScraper implements hashscraper.Scraper.
var _ hashscraper.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging. Every batch gets a random
// id so its per-URL lines can be correlated.
type LoggingScraper struct {
	next   hashscraper.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next hashscraper.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// ScrapeOne logs the outcome of a single scrape.
func (s *LoggingScraper) ScrapeOne(ctx context.Context, url string, wait hashscraper.WaitStrategy) (result *hashscraper.PageResult, err error) {
	defer func(begin time.Time) {
		var size int
		if result != nil {
			size = len(result.Content)
		}
		s.logger.Info("scrape",
			"url", url,
			"chars", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScrapeOne(ctx, url, wait)
}

// ScrapeAll logs the batch summary and one line per failed URL.
func (s *LoggingScraper) ScrapeAll(ctx context.Context, urls []string, wait hashscraper.WaitStrategy) *hashscraper.BatchReport {
	begin := time.Now()
	logger := s.logger.With("batch", uuid.NewString())
	logger.Debug("batch started", "urls", len(urls), "wait", string(wait))

	report := s.next.ScrapeAll(ctx, urls, wait)

	for _, result := range report.Results {
		if result != nil && !result.Success {
			logger.Warn("scrape failed", "url", result.URL, "err", result.Error)
		}
	}
	logger.Info("batch",
		"total", report.Total(),
		"successful", report.SuccessCount(),
		"duration", time.Since(begin),
	)
	return report
}
