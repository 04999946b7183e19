// Package trafilatura provides a pagesum.TextExtractor built on
// markusmobius/go-trafilatura. Compared to the readability extractor it is
// more aggressive about discarding boilerplate around article bodies.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"pagesum"
)

// Ensure Extractor implements pagesum.TextExtractor at compile time.
var _ pagesum.TextExtractor = (*Extractor)(nil)

// Extractor extracts main article content using trafilatura.
type Extractor struct {
	converter pagesum.Converter
}

// NewExtractor creates a new Extractor. The converter turns the extracted
// content HTML into Markdown.
func NewExtractor(converter pagesum.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// ExtractText returns the main content of the document as Markdown.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "failed to extract content: %v", err)
	}

	if result.ContentNode == nil {
		return "", nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", err
	}

	return e.converter.Convert(contentHTML)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "failed to render content: %v", err)
	}
	return buf.String(), nil
}
