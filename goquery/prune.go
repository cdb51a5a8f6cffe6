// Package goquery implements DOM-level cleanup of parsed HTML documents:
// boilerplate pruning, link resolution and plain-text flattening.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BoilerplateSelectors match page furniture that is never main content.
var BoilerplateSelectors = []string{
	"nav",
	"header",
	"footer",
	"aside",
	".sidebar",
	".menu",
	".navigation",
	".advertisement",
	".ad",
	".ads",
	"#cookie-banner",
	".cookie-notice",
}

// NonContentSelectors match elements whose content is never rendered text.
var NonContentSelectors = []string{
	"script",
	"style",
	"noscript",
	"iframe",
}

// Pruner removes boilerplate regions from a document.
// The zero value is not usable; use NewPruner.
type Pruner struct {
	selector string
}

// NewPruner returns a Pruner removing elements that match any of selectors.
func NewPruner(selectors ...string) *Pruner {
	return &Pruner{selector: strings.Join(selectors, ", ")}
}

// NewBoilerplatePruner returns a Pruner for BoilerplateSelectors.
func NewBoilerplatePruner() *Pruner {
	return NewPruner(BoilerplateSelectors...)
}

// Prune removes every element under sel matching the pruner's selectors and
// returns the number of removed elements.
func (p *Pruner) Prune(sel *goquery.Selection) int {
	if p.selector == "" {
		return 0
	}
	matches := sel.Find(p.selector)
	n := matches.Length()
	matches.Remove()
	return n
}
