package pagesum

// Page is a fetched web page.
type Page struct {
	// URL is the final URL after any redirects. Relative references in
	// the document resolve against it.
	URL string

	// HTML is the raw response body.
	HTML string
}

// PageContent is the result of extracting a page: its visible text and the
// absolute URLs of its images in document order. It is immutable after
// creation and never persisted.
type PageContent struct {
	Text   string
	Images []string
}
