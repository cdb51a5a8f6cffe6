// Package slog provides logging decorators for hashscraper services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bamchi/hashscraper"
)

// Ensure LoggingRenderer implements hashscraper.Renderer.
var _ hashscraper.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   hashscraper.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next hashscraper.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the URL being rendered and delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url string, wait hashscraper.WaitStrategy) (page *hashscraper.PageContent, err error) {
	defer func(begin time.Time) {
		var size int
		if page != nil {
			size = len(page.HTML)
		}
		r.logger.Info("render",
			"url", url,
			"wait", string(wait),
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url, wait)
}
