// Package extract composes a page fetcher with text and image extraction
// to turn a URL into page content.
package extract

import (
	"context"

	"pagesum"
)

// Ensure Service implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Service)(nil)

// Service implements pagesum.Extractor by fetching a page and running
// text and image extraction over the response body. Image URLs resolve
// against the final URL reported by the fetcher, so redirected pages
// produce correct absolute URLs.
type Service struct {
	Fetcher pagesum.Fetcher
	Text    pagesum.TextExtractor
	Images  pagesum.ImageExtractor
}

// Extract fetches the page at url and returns its content.
func (s *Service) Extract(ctx context.Context, url string) (*pagesum.PageContent, error) {
	page, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	text, err := s.Text.ExtractText(page.HTML)
	if err != nil {
		return nil, err
	}

	images, err := s.Images.ExtractImages(page.HTML, page.URL)
	if err != nil {
		return nil, err
	}

	return &pagesum.PageContent{
		Text:   text,
		Images: images,
	}, nil
}
