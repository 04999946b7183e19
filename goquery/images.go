package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pagesum"
)

// Ensure ImageExtractor implements pagesum.ImageExtractor at compile time.
var _ pagesum.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor collects image URLs from img elements in document order.
// Duplicates are kept unless deduplication is enabled.
type ImageExtractor struct {
	dedupe bool
	max    int
}

// ImageOption configures an ImageExtractor.
type ImageOption func(*ImageExtractor)

// WithDedupe drops repeated image URLs, keeping the first occurrence.
func WithDedupe() ImageOption {
	return func(e *ImageExtractor) {
		e.dedupe = true
	}
}

// WithMaxImages caps the number of collected image URLs. Zero means no cap.
func WithMaxImages(n int) ImageOption {
	return func(e *ImageExtractor) {
		e.max = n
	}
}

// NewImageExtractor creates a new ImageExtractor.
func NewImageExtractor(opts ...ImageOption) *ImageExtractor {
	e := &ImageExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractImages returns the absolute URL of every img element with a
// non-empty src attribute, in document order, resolved against baseURL.
// Elements without a src are skipped.
func (e *ImageExtractor) ExtractImages(rawHTML string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var images []string

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || src == "" {
			return
		}

		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref).String()

		if e.dedupe {
			if _, ok := seen[resolved]; ok {
				return
			}
			seen[resolved] = struct{}{}
		}

		images = append(images, resolved)
	})

	if e.max > 0 && len(images) > e.max {
		images = images[:e.max]
	}

	return images, nil
}
