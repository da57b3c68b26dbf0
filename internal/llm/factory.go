package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/riskdrill/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewEmbedder creates an Embedder from configuration.
func NewEmbedder(ctx context.Context, cfg Config) (Embedder, error) {
	switch cfg.EmbeddingProvider {
	case "openai":
		return NewOpenAIEmbedder(cfg.OpenAI, cfg.Embedding)
	case "gemini":
		return NewGeminiEmbedder(ctx, cfg.Gemini, cfg.Embedding)
	case "mock", "":
		return NewMockEmbedder(0), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.EmbeddingProvider)
	}
}
