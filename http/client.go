// Package http provides a client for the remote rendering service. The
// service loads pages in a real browser and returns the rendered HTML, so it
// can reach JavaScript-heavy and bot-protected sites.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bamchi/hashscraper"
)

// DefaultBaseURL is the address of the hosted rendering service.
const DefaultBaseURL = "https://api.hashscraper.com"

// DefaultTimeout bounds a single request to the rendering service.
// Browser rendering of slow pages can take a while.
const DefaultTimeout = 60 * time.Second

// APIKeyHeader carries the account API key on every request.
const APIKeyHeader = "X-API-Key"

const (
	scrapePath = "/api/v1/scrape"
	usagePath  = "/api/v1/usage"
)

// Error messages used when the service fails without explaining why.
const (
	scrapeFailed = "Failed to scrape the page."
	usageFailed  = "Failed to retrieve usage information."
)

// Ensure Client implements the domain interfaces at compile time.
var (
	_ hashscraper.Renderer     = (*Client)(nil)
	_ hashscraper.UsageService = (*Client)(nil)
)

// Client talks to the remote rendering service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithBaseURL points the client at a different service address.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIKey sets the account API key.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// NewClient creates a new rendering service client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

type scrapeRequest struct {
	URL        string `json:"url"`
	WaitFor    string `json:"wait_for"`
	JavaScript bool   `json:"javascript"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		HTML  string `json:"html"`
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"data"`
	Error string `json:"error"`
}

type usageResponse struct {
	Success bool              `json:"success"`
	Data    hashscraper.Usage `json:"data"`
	Error   string            `json:"error"`
}

// Render asks the service to load url in a browser, waiting for the given
// condition, and returns the rendered document.
func (c *Client) Render(ctx context.Context, url string, wait hashscraper.WaitStrategy) (*hashscraper.PageContent, error) {
	var resp scrapeResponse
	if err := c.do(ctx, http.MethodPost, scrapePath, scrapeRequest{
		URL:        url,
		WaitFor:    string(wait),
		JavaScript: true,
	}, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, hashscraper.Errorf(hashscraper.EUNAVAILABLE, "%s", orDefault(resp.Error, scrapeFailed))
	}

	return &hashscraper.PageContent{
		HTML:  resp.Data.HTML,
		URL:   resp.Data.URL,
		Title: resp.Data.Title,
	}, nil
}

// Usage returns the account's plan and credit balance.
func (c *Client) Usage(ctx context.Context) (*hashscraper.Usage, error) {
	var resp usageResponse
	if err := c.do(ctx, http.MethodGet, usagePath, nil, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, hashscraper.Errorf(hashscraper.EUNAVAILABLE, "%s", orDefault(resp.Error, usageFailed))
	}

	usage := resp.Data
	return &usage, nil
}

// do sends a JSON request and decodes the JSON response into out. Non-2xx
// responses are decoded too so the service's error message is preserved.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Error != "" {
			return hashscraper.Errorf(hashscraper.EUNAVAILABLE, "%s", failure.Error)
		}
		return hashscraper.Errorf(hashscraper.EUNAVAILABLE, "HTTP %d from %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
