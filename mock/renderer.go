package mock

import (
	"context"

	"github.com/bamchi/hashscraper"
)

var (
	_ hashscraper.Renderer     = (*Renderer)(nil)
	_ hashscraper.UsageService = (*UsageService)(nil)
)

// Renderer is a mock implementation of hashscraper.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string, wait hashscraper.WaitStrategy) (*hashscraper.PageContent, error)
}

func (r *Renderer) Render(ctx context.Context, url string, wait hashscraper.WaitStrategy) (*hashscraper.PageContent, error) {
	return r.RenderFn(ctx, url, wait)
}

// UsageService is a mock implementation of hashscraper.UsageService.
type UsageService struct {
	UsageFn func(ctx context.Context) (*hashscraper.Usage, error)
}

func (s *UsageService) Usage(ctx context.Context) (*hashscraper.Usage, error) {
	return s.UsageFn(ctx)
}
