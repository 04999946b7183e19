package pagesum

import "context"

// Summarizer generates a summary of extracted page content.
type Summarizer interface {
	// Summarize sends the page text and image URLs to a generative-text
	// model and returns the generated summary.
	Summarize(ctx context.Context, text string, images []string) (string, error)
}
