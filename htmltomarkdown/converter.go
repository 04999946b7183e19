// Package htmltomarkdown provides a pagesum.Converter built on
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"pagesum"
)

// Ensure Converter implements pagesum.Converter at compile time.
var _ pagesum.Converter = (*Converter)(nil)

// Converter converts content HTML into Markdown suitable for inclusion in
// a summarization prompt.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Empty or whitespace-only
// input yields empty output rather than an error, since extractors may
// legitimately find no main content.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "failed to convert HTML: %v", err)
	}

	return result, nil
}
