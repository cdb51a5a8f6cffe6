package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/bamchi/hashscraper"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper hashscraper.Scraper
	Usage   hashscraper.UsageService
	Writer  hashscraper.PageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      kong.ConfigFlag `help:"YAML file with default flag values" placeholder:"FILE"`
	Backend     string          `default:"api" enum:"api,browser" help:"Rendering backend (${enum})"`
	APIURL      string          `name:"api-url" default:"https://api.hashscraper.com" help:"Rendering service address"`
	APIKey      string          `name:"api-key" env:"HASHSCRAPER_API_KEY" help:"Rendering service API key"`
	Extractor   string          `default:"readability" enum:"readability,trafilatura" help:"Main content extractor (${enum})"`
	Timeout     time.Duration   `default:"60s" help:"Per-page render timeout"`
	Concurrency int             `short:"c" default:"0" help:"Concurrent render limit (0 renders a whole batch at once)"`
	Verbose     bool            `short:"v" help:"Enable debug logging"`

	Serve   ServeCmd   `cmd:"" help:"Serve the scraping tools over MCP on stdio"`
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape one or more URLs"`
	Usage   UsageCmd   `cmd:"" help:"Show API usage and remaining credits"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs    []string `arg:"" name:"url" help:"URLs to scrape (max 10)"`
	WaitFor string   `name:"wait-for" short:"w" default:"networkidle" enum:"load,networkidle,domcontentloaded" help:"Page load condition (${enum})"`
	Mode    string   `short:"m" default:"markdown" enum:"markdown,text" help:"Output format (${enum})"`
	JSON    bool     `name:"json" help:"Print results as JSON"`
	Out     string   `short:"o" placeholder:"DIR" help:"Write one Markdown file per page into DIR"`
}

// UsageCmd is the "usage" subcommand.
type UsageCmd struct{}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
