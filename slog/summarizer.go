package slog

import (
	"context"
	"log/slog"
	"time"

	"pagesum"
)

// Ensure LoggingSummarizer implements pagesum.Summarizer.
var _ pagesum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with operation logging.
type LoggingSummarizer struct {
	next   pagesum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next pagesum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, images []string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarization",
			"text_len", len(text),
			"images", len(images),
			"summary_len", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text, images)
}
