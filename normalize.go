package hashscraper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// DefaultLookback is the number of previously kept paragraphs a paragraph is
// compared against during de-duplication. It catches mobile/desktop variants
// of the same block while leaving far-apart repeats alone.
const DefaultLookback = 3

var (
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\s*\n`)
	indentRe     = regexp.MustCompile(`(?m)^ +`)
)

// Normalize removes redundancy from emitted Markdown or text: repeated
// adjacent lines within a paragraph, paragraphs repeating one of the last
// DefaultLookback kept paragraphs, blank paragraphs, runs of blank lines and
// trailing whitespace. Normalize is idempotent.
func Normalize(raw string) string {
	return NormalizeWithLookback(raw, DefaultLookback)
}

// NormalizeWithLookback is like Normalize with a custom paragraph lookback
// window. A lookback of zero or less disables paragraph de-duplication.
func NormalizeWithLookback(raw string, lookback int) string {
	text := formatWhitespace(raw)

	var kept []string
	var keptNorm []string
	for _, para := range strings.Split(text, "\n\n") {
		para = dedupLines(para)

		norm := collapseWhitespace(para)
		if norm == "" {
			continue
		}

		if isRecentDuplicate(norm, keptNorm, lookback) {
			continue
		}

		kept = append(kept, para)
		keptNorm = append(keptNorm, norm)
	}

	return formatWhitespace(strings.Join(kept, "\n\n"))
}

// CleanText prepares flattened plain text for Normalize: runs of spaces and
// tabs become one space, whitespace-only gaps between lines become a single
// paragraph break and leading spaces are stripped from every line.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	text = indentRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ContentHash returns the xxhash digest of content in hex.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// isRecentDuplicate reports whether norm equals any of the last lookback
// entries of kept.
func isRecentDuplicate(norm string, kept []string, lookback int) bool {
	if lookback <= 0 {
		return false
	}
	start := len(kept) - lookback
	if start < 0 {
		start = 0
	}
	for _, prev := range kept[start:] {
		if prev == norm {
			return true
		}
	}
	return false
}

// dedupLines drops lines whose trimmed text equals the previous kept line.
func dedupLines(para string) string {
	lines := strings.Split(para, "\n")
	out := lines[:0]
	prev := ""
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i > 0 && trimmed != "" && trimmed == prev {
			continue
		}
		out = append(out, line)
		prev = trimmed
	}
	return strings.Join(out, "\n")
}

// formatWhitespace strips trailing whitespace from every line, collapses
// runs of three or more newlines to two and trims the result.
func formatWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	s = strings.Join(lines, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
