package mock

import (
	"context"

	"pagesum"
)

var _ pagesum.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of pagesum.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ pagesum.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of pagesum.ImageExtractor.
type ImageExtractor struct {
	ExtractImagesFn func(html string, baseURL string) ([]string, error)
}

func (e *ImageExtractor) ExtractImages(html string, baseURL string) ([]string, error) {
	return e.ExtractImagesFn(html, baseURL)
}

var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesum.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*pagesum.PageContent, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*pagesum.PageContent, error) {
	return e.ExtractFn(ctx, url)
}
