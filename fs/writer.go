// Package fs writes scraped pages to disk as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bamchi/hashscraper"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a page URL to a relative file path rooted at the
// URL's host.
// Example: https://example.com/docs/api/users → example.com/docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", hashscraper.Errorf(hashscraper.EINVALID, "URL has no host: %q", rawURL)
	}

	host := strings.ReplaceAll(u.Host, ":", "_")
	path := strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+u.Path)), "/")

	switch {
	case path == "":
		return host + "/index.md", nil
	case strings.HasSuffix(u.Path, "/"):
		return host + "/" + path + "/index.md", nil
	}
	return host + "/" + strings.TrimSuffix(path, ".html") + ".md", nil
}

// frontMatter is the YAML header of a written page.
type frontMatter struct {
	Source  string `yaml:"source"`
	Title   string `yaml:"title"`
	Hash    string `yaml:"hash,omitempty"`
	Scraped string `yaml:"scraped"`
}

// FormatPage formats a page with YAML front matter.
func FormatPage(result *hashscraper.PageResult, scraped time.Time) (string, error) {
	source := result.ResolvedURL
	if source == "" {
		source = result.URL
	}

	header, err := yaml.Marshal(frontMatter{
		Source:  source,
		Title:   result.Title,
		Hash:    result.ContentHash,
		Scraped: scraped.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(result.Content)
	b.WriteString("\n")
	return b.String(), nil
}

// Ensure Writer implements hashscraper.PageWriter at compile time.
var _ hashscraper.PageWriter = (*Writer)(nil)

// Writer writes pages as markdown files to a directory.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithClock sets the time source used for the scraped date.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...WriterOption) *Writer {
	w := &Writer{baseDir: baseDir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WritePage writes a successful result to disk. The path is derived from
// the requested URL so that reruns overwrite the same file.
func (w *Writer) WritePage(ctx context.Context, result *hashscraper.PageResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !result.Success {
		return hashscraper.Errorf(hashscraper.EINVALID, "cannot write failed result for %s", result.URL)
	}

	relPath, err := URLToPath(result.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(result, w.now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
