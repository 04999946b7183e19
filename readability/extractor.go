// Package readability provides a pagesum.TextExtractor built on
// go-shiori/go-readability. It extracts the main article content and
// converts it to Markdown, dropping navigation and other boilerplate.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	"pagesum"
)

// Ensure Extractor implements pagesum.TextExtractor at compile time.
var _ pagesum.TextExtractor = (*Extractor)(nil)

// Extractor extracts main article content using readability heuristics.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "failed to extract content: %v", err)
	}

	return e.converter.Convert(article.Content)
}
