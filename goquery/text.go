// Package goquery provides HTML extraction built on PuerkitoBio/goquery:
// a text extractor that strips non-visible elements, and an image URL
// collector.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"pagesum"
)

// Ensure StripExtractor implements pagesum.TextExtractor at compile time.
var _ pagesum.TextExtractor = (*StripExtractor)(nil)

// StripExtractor extracts the visible text of a document by removing all
// script and style elements and concatenating the remaining non-empty text
// nodes, each trimmed, in document order with single-space separators.
type StripExtractor struct{}

// NewStripExtractor creates a new StripExtractor.
func NewStripExtractor() *StripExtractor {
	return &StripExtractor{}
}

// ExtractText returns the visible text of the given HTML document.
func (e *StripExtractor) ExtractText(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style").Remove()

	var parts []string
	for _, root := range doc.Nodes {
		collectText(root, &parts)
	}

	return strings.Join(parts, " "), nil
}

// collectText appends trimmed non-empty text nodes in document order.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
