package pagesum

import "context"

// TextExtractor extracts the visible text of an HTML document.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}

// ImageExtractor collects image URLs from an HTML document.
type ImageExtractor interface {
	// ExtractImages returns the absolute URLs of all img elements with a
	// non-empty src attribute, in document order, resolved against baseURL.
	ExtractImages(html string, baseURL string) ([]string, error)
}

// Extractor turns a URL into page content. Implementations combine
// fetching with text and image extraction.
type Extractor interface {
	Extract(ctx context.Context, url string) (*PageContent, error)
}
