// Package slog provides logging decorators for pagesum domain interfaces
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"pagesum"
)

// Ensure LoggingExtractor implements pagesum.Extractor.
var _ pagesum.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with operation logging.
type LoggingExtractor struct {
	next   pagesum.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagesum.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (content *pagesum.PageContent, err error) {
	defer func(begin time.Time) {
		images := 0
		textLen := 0
		if content != nil {
			images = len(content.Images)
			textLen = len(content.Text)
		}
		e.logger.Info("page extraction",
			"url", url,
			"text_len", textLen,
			"images", images,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url)
}
