package llm

import (
	"context"
	"fmt"

	"github.com/argus-nlp/argus/internal/model"
)

// Summarizer generates coaching summaries for analysis reports
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer. A config without a provider yields a
// disabled summarizer, not an error.
func NewSummarizer(cfg Config) (*Summarizer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: cfg}, nil
}

// Enabled reports whether a provider is configured
func (s *Summarizer) Enabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates the coaching summary for a finished report
func (s *Summarizer) Summarize(ctx context.Context, report *model.Report) (*model.LLMSummary, error) {
	if !s.Enabled() {
		return nil, nil
	}

	maxTokens := s.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	summary, err := s.provider.Complete(ctx, BuildPrompt(report), maxTokens)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	return &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     s.config.Model,
		SummaryMD: summary,
	}, nil
}
