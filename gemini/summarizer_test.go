package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"pagesum"
	"pagesum/gemini"
)

func TestSummarizer_MissingAPIKey(t *testing.T) {
	t.Parallel()

	sum, err := gemini.NewSummarizer(context.Background(), "")
	require.NoError(t, err)

	// The same message is returned regardless of input.
	for _, tc := range []struct {
		text   string
		images []string
	}{
		{"page text", []string{"https://x.com/a.png"}},
		{"", nil},
	} {
		_, err := sum.Summarize(context.Background(), tc.text, tc.images)

		require.Error(t, err)
		assert.Equal(t, pagesum.EUNAUTHORIZED, pagesum.ErrorCode(err))
		assert.Equal(t, "Gemini API key not found. Please check your config.toml file.", pagesum.ErrorMessage(err))
	}
}

func TestSummaryText_EmptyCandidates(t *testing.T) {
	t.Parallel()

	_, err := gemini.SummaryText(&genai.GenerateContentResponse{})

	require.Error(t, err)
	assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
	assert.Equal(t, "No summary returned from Gemini API.", pagesum.ErrorMessage(err))
}

func TestSummaryText_NilResponse(t *testing.T) {
	t.Parallel()

	_, err := gemini.SummaryText(nil)

	require.Error(t, err)
	assert.Equal(t, "No summary returned from Gemini API.", pagesum.ErrorMessage(err))
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("contains the page text and instruction", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt("Some page text.", nil, 0)

		assert.True(t, strings.HasPrefix(prompt, "Web Page Content:\nSome page text."))
		assert.Contains(t, prompt, "Please provide a brief summary of the above content.")
	})

	t.Run("renders None for an empty image list", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt("text", nil, 0)

		assert.Contains(t, prompt, "Images:\nNone")
	})

	t.Run("joins image URLs with comma and space", func(t *testing.T) {
		t.Parallel()

		images := []string{"https://x.com/a.png", "https://x.com/b.png"}
		prompt := gemini.BuildPrompt("text", images, 0)

		assert.Contains(t, prompt, "Images:\nhttps://x.com/a.png, https://x.com/b.png")
	})

	t.Run("truncates text at the configured limit", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt("abcdefghij", nil, 4)

		assert.Contains(t, prompt, "Web Page Content:\nabcd\n\nImages:")
		assert.NotContains(t, prompt, "abcde")
	})

	t.Run("truncation does not split a rune", func(t *testing.T) {
		t.Parallel()

		// "héllo": é is two bytes, a cut at byte 2 lands mid-rune.
		prompt := gemini.BuildPrompt("héllo", nil, 2)

		assert.Contains(t, prompt, "Web Page Content:\nh\n\nImages:")
	})

	t.Run("zero limit keeps the full text", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 100000)
		prompt := gemini.BuildPrompt(long, nil, 0)

		assert.Contains(t, prompt, long)
	})
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("returns the first candidate's text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A brief summary."}]}}]}`))
		}))
		defer server.Close()

		sum, err := gemini.NewSummarizer(context.Background(), "test-key", gemini.WithBaseURL(server.URL))
		require.NoError(t, err)

		summary, err := sum.Summarize(context.Background(), "page text", []string{"https://x.com/a.png"})
		require.NoError(t, err)
		assert.Equal(t, "A brief summary.", summary)
	})

	t.Run("returns ENOTFOUND for an empty candidates array", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		sum, err := gemini.NewSummarizer(context.Background(), "test-key", gemini.WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = sum.Summarize(context.Background(), "page text", nil)
		require.Error(t, err)
		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
		assert.Equal(t, "No summary returned from Gemini API.", pagesum.ErrorMessage(err))
	})

	t.Run("wraps API errors with the calling-error message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		sum, err := gemini.NewSummarizer(context.Background(), "test-key", gemini.WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = sum.Summarize(context.Background(), "page text", nil)
		require.Error(t, err)
		assert.Equal(t, pagesum.EUNAVAILABLE, pagesum.ErrorCode(err))
		assert.True(t, strings.HasPrefix(pagesum.ErrorMessage(err), "Error calling Gemini API: "))
	})
}
