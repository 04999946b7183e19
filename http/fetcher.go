// Package http provides an HTTP-based implementation of pagesum.Fetcher
// for retrieving web pages with plain GET requests.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"pagesum"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pagesum.Fetcher at compile time.
var _ pagesum.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves web pages using plain HTTP requests. It does not
// execute JavaScript; pages are used as served.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL. The URL is not validated
// before the request; malformed input surfaces as a request error. The
// returned Page.URL is the final URL after any redirects, which relative
// references in the document resolve against.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagesum.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "%v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EUNAVAILABLE, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, pagesum.Errorf(pagesum.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EUNAVAILABLE, "%v", err)
	}

	return &pagesum.Page{
		URL:  resp.Request.URL.String(),
		HTML: string(body),
	}, nil
}
