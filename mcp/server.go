// Package mcp exposes scraping as Model Context Protocol tools.
package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/bamchi/hashscraper"
	"github.com/bamchi/hashscraper/scrape"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Name is the implementation name announced to clients.
const Name = "hashscraper"

// Tool names.
const (
	ToolGetUsage   = "get_usage"
	ToolScrapeURL  = "scrape_url"
	ToolScrapeURLs = "scrape_urls"
)

// Server registers the scraping tools on an MCP server.
type Server struct {
	server  *mcp.Server
	scraper hashscraper.Scraper
	usage   hashscraper.UsageService
	logger  *slog.Logger
	version string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for tool calls. Defaults to discarding output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersion sets the version announced to clients.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer creates a Server with all tools registered.
func NewServer(scraper hashscraper.Scraper, usage hashscraper.UsageService, opts ...Option) *Server {
	s := &Server{
		scraper: scraper,
		usage:   usage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.server = mcp.NewServer(&mcp.Implementation{Name: Name, Version: s.version}, nil)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolGetUsage,
		Description: "Check API usage and remaining credits. Returns current plan, total credits, usage, remaining credits, and reset date.",
	}, s.getUsage)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolScrapeURL,
		Description: "Scrapes a webpage and returns the content in AI-readable Markdown format. Can access blocked sites through browser rendering.",
	}, s.scrapeURL)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolScrapeURLs,
		Description: "Scrapes multiple webpages in parallel and returns the content in AI-readable Markdown format. Can access blocked sites through browser rendering.",
	}, s.scrapeURLs)

	return s
}

// Run serves the tools over stdin and stdout until ctx is done or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving MCP on stdio", "version", s.version)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves the tools over an arbitrary transport.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// GetUsageInput takes no arguments.
type GetUsageInput struct{}

// ScrapeURLInput holds the arguments of scrape_url.
type ScrapeURLInput struct {
	URL     string `json:"url" jsonschema:"The URL of the webpage to scrape"`
	WaitFor string `json:"wait_for,omitempty" jsonschema:"Page load condition to wait for: load, networkidle or domcontentloaded (networkidle recommended for SPA sites)"`
}

// ScrapeURLsInput holds the arguments of scrape_urls.
type ScrapeURLsInput struct {
	URLs    []string `json:"urls" jsonschema:"URLs to scrape (max 10)"`
	WaitFor string   `json:"wait_for,omitempty" jsonschema:"Page load condition to wait for: load, networkidle or domcontentloaded (networkidle recommended for SPA sites)"`
}

func (s *Server) getUsage(ctx context.Context, _ *mcp.CallToolRequest, _ GetUsageInput) (*mcp.CallToolResult, any, error) {
	usage, err := s.usage.Usage(ctx)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(hashscraper.FormatUsage(usage)), nil, nil
}

func (s *Server) scrapeURL(ctx context.Context, _ *mcp.CallToolRequest, in ScrapeURLInput) (*mcp.CallToolResult, any, error) {
	wait, err := hashscraper.ParseWaitStrategy(in.WaitFor)
	if err != nil {
		return errorResult(err), nil, nil
	}
	if err := scrape.ValidateURL(in.URL); err != nil {
		return errorResult(err), nil, nil
	}

	result, err := s.scraper.ScrapeOne(ctx, in.URL, wait)
	if err != nil {
		s.logger.Debug("scrape_url failed", "url", in.URL, "err", err)
		return errorResult(err), nil, nil
	}
	return textResult(hashscraper.FormatPage(result)), nil, nil
}

func (s *Server) scrapeURLs(ctx context.Context, _ *mcp.CallToolRequest, in ScrapeURLsInput) (*mcp.CallToolResult, any, error) {
	wait, err := hashscraper.ParseWaitStrategy(in.WaitFor)
	if err != nil {
		return errorResult(err), nil, nil
	}
	if err := scrape.ValidateURLs(in.URLs); err != nil {
		return errorResult(err), nil, nil
	}

	report := s.scraper.ScrapeAll(ctx, in.URLs, wait)
	return textResult(hashscraper.FormatBatchReport(report)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: hashscraper.FormatError(err)}},
	}
}
