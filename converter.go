package pagesum

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean content HTML (e.g., from a readability-style extractor).
	Convert(html string) (string, error)
}
