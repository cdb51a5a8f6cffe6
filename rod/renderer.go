// Package rod renders pages locally in headless Chrome. It is the
// alternative to the remote rendering service for setups without an API key.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/bamchi/hashscraper"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultRenderTimeout bounds a single page render.
const DefaultRenderTimeout = 30 * time.Second

// Ensure Renderer implements hashscraper.Renderer at compile time.
var _ hashscraper.Renderer = (*Renderer)(nil)

// Renderer loads pages in a managed headless browser.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager *BrowserManager
	timeout time.Duration
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderTimeout sets the timeout for a single render.
func WithRenderTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// NewRenderer creates a Renderer on top of manager. The manager stays owned
// by the caller.
func NewRenderer(manager *BrowserManager, opts ...Option) *Renderer {
	r := &Renderer{
		manager: manager,
		timeout: DefaultRenderTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// lifecycleEvent maps a wait strategy onto the Chrome lifecycle event that
// satisfies it.
func lifecycleEvent(wait hashscraper.WaitStrategy) proto.PageLifecycleEventName {
	switch wait {
	case hashscraper.WaitLoad:
		return proto.PageLifecycleEventNameLoad
	case hashscraper.WaitDOMContentLoaded:
		return proto.PageLifecycleEventNameDOMContentLoaded
	default:
		return proto.PageLifecycleEventNameNetworkIdle
	}
}

// Render navigates to url, waits for the lifecycle event matching wait and
// returns the rendered HTML with the final URL and title.
func (r *Renderer) Render(ctx context.Context, url string, wait hashscraper.WaitStrategy) (*hashscraper.PageContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.manager.NewPage()
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	page = page.Context(ctx)

	waitNavigation := page.WaitNavigation(lifecycleEvent(wait))
	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	waitNavigation()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	return &hashscraper.PageContent{
		HTML:  html,
		URL:   info.URL,
		Title: info.Title,
	}, nil
}
