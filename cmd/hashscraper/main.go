package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/bamchi/hashscraper"
	"github.com/bamchi/hashscraper/fs"
	"github.com/bamchi/hashscraper/htmltomarkdown"
	hshttp "github.com/bamchi/hashscraper/http"
	"github.com/bamchi/hashscraper/readability"
	"github.com/bamchi/hashscraper/rod"
	"github.com/bamchi/hashscraper/scrape"
	hsslog "github.com/bamchi/hashscraper/slog"
	"github.com/bamchi/hashscraper/trafilatura"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files consulted for flag values not given on
	// the command line. Missing files are skipped.
	ConfigPaths []string

	// Services for end-to-end testing. When set they replace the
	// backends selected by flags.
	Renderer hashscraper.Renderer
	Usage    hashscraper.UsageService
	Writer   hashscraper.PageWriter

	browser *rod.BrowserManager
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{"~/.config/hashscraper/config.yaml", "hashscraper.yaml"},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.browser != nil {
		return m.browser.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hashscraper"),
		kong.Description("Scrape web pages into clean, LLM-ready Markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
		kong.Configuration(YAMLConfig, m.ConfigPaths...),
		kong.Vars{"version": Version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hashscraper --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	defer m.Close()

	command := kongCtx.Command()
	if command == "version" {
		return kongCtx.Run(deps)
	}

	if strings.HasPrefix(command, "usage") || command == "serve" {
		usage, err := m.usageService(cli, stderr)
		if err != nil {
			return err
		}
		deps.Usage = hsslog.NewLoggingUsageService(usage, deps.Logger)
	}

	if strings.HasPrefix(command, "scrape") || command == "serve" {
		mode := hashscraper.ModeMarkdown
		if strings.HasPrefix(command, "scrape") {
			mode = hashscraper.Mode(cli.Scrape.Mode)
		}
		scraper, err := m.scraper(cli, mode, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Scraper = scraper
	}

	if strings.HasPrefix(command, "scrape") && cli.Scrape.Out != "" {
		deps.Writer = m.pageWriter(cli.Scrape.Out)
	}

	return kongCtx.Run(deps)
}

// renderer selects the rendering backend.
func (m *Main) renderer(cli *CLI, stderr io.Writer) (hashscraper.Renderer, error) {
	if m.Renderer != nil {
		return m.Renderer, nil
	}

	switch cli.Backend {
	case "browser":
		manager, err := rod.NewBrowserManager()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		m.browser = manager
		return rod.NewRenderer(manager, rod.WithRenderTimeout(cli.Timeout)), nil
	default:
		return m.client(cli, stderr)
	}
}

func (m *Main) usageService(cli *CLI, stderr io.Writer) (hashscraper.UsageService, error) {
	if m.Usage != nil {
		return m.Usage, nil
	}
	return m.client(cli, stderr)
}

func (m *Main) pageWriter(dir string) hashscraper.PageWriter {
	if m.Writer != nil {
		return m.Writer
	}
	return fs.NewWriter(dir)
}

func (m *Main) client(cli *CLI, stderr io.Writer) (*hshttp.Client, error) {
	if cli.APIKey == "" {
		fmt.Fprintln(stderr, "HASHSCRAPER_API_KEY environment variable not set. Use --backend=browser to render pages locally.")
		return nil, hashscraper.Errorf(hashscraper.EINVALID, "HASHSCRAPER_API_KEY not set")
	}
	return hshttp.NewClient(
		hshttp.WithBaseURL(cli.APIURL),
		hshttp.WithAPIKey(cli.APIKey),
		hshttp.WithTimeout(cli.Timeout),
	), nil
}

// scraper wires the full pipeline: renderer, structural extractor,
// Markdown converter and batch orchestration, each wrapped in logging.
func (m *Main) scraper(cli *CLI, mode hashscraper.Mode, logger *slog.Logger, stderr io.Writer) (hashscraper.Scraper, error) {
	renderer, err := m.renderer(cli, stderr)
	if err != nil {
		return nil, err
	}

	var articles hashscraper.ArticleExtractor
	switch cli.Extractor {
	case "trafilatura":
		articles = trafilatura.NewExtractor()
	default:
		articles = readability.NewExtractor()
	}

	extractor := scrape.NewExtractor(articles, htmltomarkdown.NewConverter(), scrape.WithLogger(logger))
	scraper := scrape.NewScraper(
		hsslog.NewLoggingRenderer(renderer, logger),
		extractor,
		scrape.WithMode(mode),
		scrape.WithConcurrency(cli.Concurrency),
	)
	return hsslog.NewLoggingScraper(scraper, logger), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
