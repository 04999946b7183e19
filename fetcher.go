package pagesum

import "context"

// Fetcher retrieves web pages over the network.
type Fetcher interface {
	// Fetch issues a GET request for url and returns the page. The
	// returned Page.URL reflects any redirects followed. The context
	// controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)
}
