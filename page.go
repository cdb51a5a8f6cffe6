package hashscraper

import "context"

// MaxBatchURLs is the largest number of URLs accepted by a single batch.
const MaxBatchURLs = 10

// UntitledPage is used when the renderer reports no page title.
const UntitledPage = "Untitled"

// WaitStrategy is the page load condition a renderer waits for before
// capturing HTML.
type WaitStrategy string

// WaitStrategy constants.
const (
	WaitLoad             WaitStrategy = "load"
	WaitNetworkIdle      WaitStrategy = "networkidle"
	WaitDOMContentLoaded WaitStrategy = "domcontentloaded"
)

// DefaultWaitStrategy is recommended for single-page applications.
const DefaultWaitStrategy = WaitNetworkIdle

// WaitStrategies lists all supported wait strategies.
var WaitStrategies = []WaitStrategy{WaitLoad, WaitNetworkIdle, WaitDOMContentLoaded}

// ParseWaitStrategy parses s into a WaitStrategy.
// An empty string yields DefaultWaitStrategy.
func ParseWaitStrategy(s string) (WaitStrategy, error) {
	if s == "" {
		return DefaultWaitStrategy, nil
	}
	for _, w := range WaitStrategies {
		if string(w) == s {
			return w, nil
		}
	}
	return "", Errorf(EINVALID, "invalid wait strategy %q: must be one of load, networkidle, domcontentloaded", s)
}

// Mode selects the output format of extraction.
type Mode string

// Mode constants.
const (
	ModeMarkdown Mode = "markdown"
	ModeText     Mode = "text"
)

// PageContent is a rendered page as returned by a Renderer.
type PageContent struct {
	// HTML is the raw, possibly browser-rendered document.
	HTML string

	// URL is the page address after redirects. Relative links and images
	// are resolved against it.
	URL string

	// Title is the document title reported by the renderer, if any.
	Title string
}

// PageResult is the outcome of scraping one requested URL.
// Content is set on success and Error on failure.
type PageResult struct {
	// URL is the requested URL.
	URL string `json:"url"`

	// ResolvedURL is the page URL after redirects, set on success.
	ResolvedURL string `json:"resolvedUrl,omitempty"`

	Success     bool   `json:"success"`
	Title       string `json:"title,omitempty"`
	Content     string `json:"content,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BatchReport holds one PageResult per requested URL in request order.
type BatchReport struct {
	Results []*PageResult `json:"results"`
}

// SuccessCount returns the number of successful results.
func (r *BatchReport) SuccessCount() int {
	var n int
	for _, res := range r.Results {
		if res.Success {
			n++
		}
	}
	return n
}

// Total returns the number of results in the report.
func (r *BatchReport) Total() int {
	return len(r.Results)
}

// Scraper fetches pages and converts them to normalized documents.
// Implementations hide rendering, extraction and normalization.
type Scraper interface {
	// ScrapeOne fetches and converts a single page.
	// Fetch-layer failures are returned as errors.
	ScrapeOne(ctx context.Context, url string, wait WaitStrategy) (*PageResult, error)

	// ScrapeAll fetches and converts all pages concurrently. Per-URL
	// failures are reported in the corresponding PageResult and never
	// fail the batch.
	ScrapeAll(ctx context.Context, urls []string, wait WaitStrategy) *BatchReport
}

// PageWriter persists scraped pages.
type PageWriter interface {
	WritePage(ctx context.Context, result *PageResult) error
}
