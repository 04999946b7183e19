package mock

import (
	"context"

	"pagesum"
)

var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagesum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, images []string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, images []string) (string, error) {
	return s.SummarizeFn(ctx, text, images)
}
