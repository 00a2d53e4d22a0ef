// Package llm generates an optional natural-language coaching summary of
// an analysis report. The summary is produced after all scoring and never
// feeds back into it.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/argus-nlp/argus/internal/model"
)

// Provider is a chat-completion backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete generates a completion for the prompt
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai", "ollama", "" = disabled
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for OpenAI-compatible endpoints (required for ollama)
	BaseURL string

	// MaxTokens limits the response length
	MaxTokens int
}

// ConfigFromModel converts the typed app config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		MaxTokens: cfg.MaxTokens,
	}
}

// NewProvider creates a provider from configuration. An empty provider
// name yields (nil, nil): LLM summaries disabled.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIProvider(cfg)
	case "ollama":
		return newOllamaProvider(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", cfg.Provider)
	}
}

// BuildPrompt constructs the coaching prompt from the report. Only
// already-computed results are handed over; the model sees no raw scoring
// internals it could alter.
func BuildPrompt(report *model.Report) string {
	var b strings.Builder

	b.WriteString("You are reviewing the output of a heuristic argument-structure analysis.\n")
	b.WriteString("Write a short coaching summary in Markdown: name the main claims, how well they are supported, notable counter-arguments, and the most important logical weaknesses.\n")
	b.WriteString("Do not invent sentences that are not listed. Do not change or re-score anything.\n\n")

	b.WriteString("Classified sentences:\n")
	for _, c := range report.Classifications {
		fmt.Fprintf(&b, "- [%s] (strength %.2f, sentiment %s) %s\n",
			c.ArgumentType, c.Strength, c.Sentiment, c.SentenceText)
	}

	b.WriteString("\nWeakness findings:\n")
	for _, sw := range report.Weaknesses {
		for _, f := range sw.Findings {
			if f.Name == "None" {
				continue
			}
			fmt.Fprintf(&b, "- sentence %d: %s\n", sw.DocID, f.Name)
		}
	}

	fmt.Fprintf(&b, "\nForest: %d root claim(s), max depth %d, average strength %.2f.\n",
		report.Stats.RootClaims, report.Stats.MaxDepth, report.Stats.AvgStrength)

	return b.String()
}
