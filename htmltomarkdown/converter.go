// Package htmltomarkdown implements hashscraper.Converter on top of
// html-to-markdown with rules tuned for language model consumption.
package htmltomarkdown

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	pq "github.com/PuerkitoBio/goquery"
	"github.com/bamchi/hashscraper"
	"github.com/bamchi/hashscraper/goquery"
	"golang.org/x/net/html"
)

// Ensure Converter implements hashscraper.Converter at compile time.
var _ hashscraper.Converter = (*Converter)(nil)

// removedTags are dropped together with their content.
var removedTags = []string{"script", "style", "noscript", "iframe"}

// defaultImageAlt is used for images without alt text.
const defaultImageAlt = "image"

// Converter wraps html-to-markdown to convert HTML to Markdown.
//
// The rule set is registered once in NewConverter and never modified
// afterwards, so a Converter is safe for concurrent use.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter emitting ATX headings, fenced code
// blocks and "-" bullets, with custom rules for images and links.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithBulletListMarker("-"),
			),
			table.NewTablePlugin(),
		),
	)

	for _, tag := range removedTags {
		conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityEarly)
	}
	conv.Register.RendererFor("img", converter.TagTypeInline, renderImage, converter.PriorityEarly)
	conv.Register.RendererFor("a", converter.TagTypeInline, renderLink, converter.PriorityEarly)

	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(rawHTML string, pageURL string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", hashscraper.Errorf(hashscraper.EINVALID, "empty HTML input")
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	if pageURL != "" {
		base, err := url.Parse(pageURL)
		if err != nil {
			return "", hashscraper.Errorf(hashscraper.EINVALID, "invalid page URL: %v", err)
		}
		goquery.ResolveURLs(pq.NewDocumentFromNode(doc).Selection, base)
	}

	result, err := c.conv.ConvertNode(doc)
	if err != nil {
		return "", err
	}

	return string(result), nil
}

// renderImage emits ![alt](src). Images without a source emit nothing.
func renderImage(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	src := strings.TrimSpace(attr(n, "src"))
	if src == "" {
		return converter.RenderSuccess
	}

	alt := strings.TrimSpace(attr(n, "alt"))
	if alt == "" {
		alt = defaultImageAlt
	}

	w.WriteString("![" + alt + "](" + escapeDestination(src) + ")")
	return converter.RenderSuccess
}

// renderLink emits [text](href) with trimmed anchor text. Links without a
// target or without text degrade to the plain text.
func renderLink(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)
	text := strings.TrimSpace(buf.String())

	href := strings.TrimSpace(attr(n, "href"))
	if href == "" || text == "" {
		w.WriteString(text)
		return converter.RenderSuccess
	}

	w.WriteString("[" + text + "](" + escapeDestination(href) + ")")
	return converter.RenderSuccess
}

// escapeDestination percent-encodes characters that would end a Markdown
// link destination early.
func escapeDestination(dest string) string {
	return strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29").Replace(dest)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
