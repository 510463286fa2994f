package llm

import (
	"context"
	"fmt"

	"github.com/vokinneberg/sigma-ai/internal/config"
)

// Completer turns a prompt into text.
// An empty string with a nil error means the service had no usable answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Embedder turns text into a vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NewCompleter creates the completion client for the configured provider
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicMaxTokens), nil
	}
	return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
}

// NewEmbedder creates the embedding client used by the knowledge base
func NewEmbedder(ctx context.Context, cfg *config.Config) (Embedder, error) {
	kb := cfg.Knowledge
	switch kb.EmbedProvider {
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiModel)
		if err != nil {
			return nil, err
		}
		return client.WithEmbeddings(kb.EmbedModel, kb.EmbedDimension), nil
	case config.ProviderOpenAI:
		client := NewOpenAIClient(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIModel)
		return client.WithEmbeddings(kb.EmbedModel, kb.EmbedDimension), nil
	}
	return nil, fmt.Errorf("unknown embedding provider %q", kb.EmbedProvider)
}
