// Package gemini provides a pagesum.Summarizer backed by the Google
// Gemini API.
package gemini

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"google.golang.org/genai"

	"pagesum"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultTimeout bounds each generateContent call.
const DefaultTimeout = 30 * time.Second

// Ensure Summarizer implements pagesum.Summarizer at compile time.
var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagesum.Summarizer using Google Gemini.
type Summarizer struct {
	client       *genai.Client
	model        string
	maxPromptLen int
}

// Option configures a Summarizer.
type Option func(*options)

type options struct {
	model        string
	timeout      time.Duration
	maxPromptLen int
	baseURL      string
}

// WithModel sets the Gemini model name. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.model = model
		}
	}
}

// WithTimeout sets the timeout for generateContent calls.
// Defaults to DefaultTimeout (30s).
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithMaxPromptLen caps the number of bytes of page text included in the
// prompt. Zero means no limit.
func WithMaxPromptLen(n int) Option {
	return func(o *options) {
		o.maxPromptLen = n
	}
}

// WithBaseURL points the client at an alternative API endpoint.
// Used by tests to target a local server.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// NewSummarizer creates a Summarizer. When apiKey is empty no API client
// is built; every Summarize call then reports the missing key without
// attempting a network request.
func NewSummarizer(ctx context.Context, apiKey string, opts ...Option) (*Summarizer, error) {
	o := options{
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Summarizer{
		model:        o.model,
		maxPromptLen: o.maxPromptLen,
	}

	if apiKey == "" {
		return s, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: o.timeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL: o.baseURL,
		},
	})
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EUNAVAILABLE, "Error calling Gemini API: %v", err)
	}
	s.client = client

	return s, nil
}

// Summarize sends the page text and image URLs to Gemini and returns the
// generated summary.
func (s *Summarizer) Summarize(ctx context.Context, text string, images []string) (string, error) {
	if s.client == nil {
		return "", pagesum.Errorf(pagesum.EUNAUTHORIZED, "Gemini API key not found. Please check your config.toml file.")
	}

	prompt := BuildPrompt(text, images, s.maxPromptLen)

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EUNAVAILABLE, "Error calling Gemini API: %v", err)
	}

	return SummaryText(result)
}

// SummaryText returns the first candidate's generated text from a
// generateContent response.
func SummaryText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, "No summary returned from Gemini API.")
	}
	return result.Text(), nil
}

// BuildPrompt assembles the summarization prompt from page text and image
// URLs. maxTextLen caps the included text in bytes, cutting at a rune
// boundary; zero means no limit.
func BuildPrompt(text string, images []string, maxTextLen int) string {
	if maxTextLen > 0 && len(text) > maxTextLen {
		cut := maxTextLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	imageList := "None"
	if len(images) > 0 {
		imageList = strings.Join(images, ", ")
	}

	var sb strings.Builder
	sb.WriteString("Web Page Content:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nImages:\n")
	sb.WriteString(imageList)
	sb.WriteString("\n\nPlease provide a brief summary of the above content.")
	return sb.String()
}
