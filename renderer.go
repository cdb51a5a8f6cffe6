package hashscraper

import "context"

// Renderer retrieves rendered HTML for a URL.
// Implementations may use a remote scraping service or browser automation.
type Renderer interface {
	// Render loads the URL, waits for the given condition and returns the
	// page HTML together with its resolved URL and title.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string, wait WaitStrategy) (*PageContent, error)
}

// Usage describes the account status of the rendering service.
type Usage struct {
	Plan             string `json:"plan"`
	CreditsTotal     int64  `json:"credits_total"`
	CreditsUsed      int64  `json:"credits_used"`
	CreditsRemaining int64  `json:"credits_remaining"`
	ResetDate        string `json:"reset_date"`
}

// UsageService reports account usage of the rendering service.
type UsageService interface {
	Usage(ctx context.Context) (*Usage, error)
}
