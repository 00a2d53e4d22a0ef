package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAIProvider talks to OpenAI or any OpenAI-compatible endpoint
type openAIProvider struct {
	client *openai.Client
	name   string
	model  string
}

// newOpenAIProvider creates the hosted OpenAI provider
func newOpenAIProvider(cfg Config) (*openAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		name:   "openai",
		model:  model,
	}, nil
}

// newOllamaProvider reuses the OpenAI-compatible API that Ollama exposes.
// No API key is needed; the client library still wants a non-empty one.
func newOllamaProvider(cfg Config) (*openAIProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}

	clientConfig := openai.DefaultConfig("ollama")
	clientConfig.BaseURL = baseURL

	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama provider requires a model name")
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		name:   "ollama",
		model:  cfg.Model,
	}, nil
}

// Name returns the provider name
func (p *openAIProvider) Name() string {
	return p.name
}

// Complete generates a completion via the Chat Completions API
func (p *openAIProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
