package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// urlAttrs maps selectors to the attribute holding a URL.
var urlAttrs = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"img[src]", "src"},
}

// ResolveURLs rewrites relative link and image URLs under sel to absolute
// URLs resolved against base. Attributes that cannot be parsed are left
// unchanged and non-HTTP links such as javascript: or mailto: are untouched.
// Fragment-only links resolve to the base document.
func ResolveURLs(sel *goquery.Selection, base *url.URL) {
	if base == nil {
		return
	}
	for _, ua := range urlAttrs {
		sel.Find(ua.selector).Each(func(_ int, s *goquery.Selection) {
			raw, _ := s.Attr(ua.attr)
			raw = strings.TrimSpace(raw)
			if raw == "" || isNonHTTPLink(raw) {
				return
			}
			ref, err := url.Parse(raw)
			if err != nil {
				return
			}
			s.SetAttr(ua.attr, base.ResolveReference(ref).String())
		})
	}
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
