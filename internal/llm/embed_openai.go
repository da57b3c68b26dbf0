package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIEmbeddingModel = "text-embedding-3-small"

// OpenAIEmbedder implements Embedder using the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

// NewOpenAIEmbedder creates an embedder backed by OpenAI (or a
// compatible API when OpenAIConfig.BaseURL is set).
func NewOpenAIEmbedder(cfg OpenAIConfig, emb EmbeddingConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := emb.Model
	if model == "" {
		model = defaultOpenAIEmbeddingModel
	}

	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.model),
		Input: texts,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Data) != len(texts) {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(resp.Data)),
		}
	}

	// Results carry an Index field; map by it rather than slice order.
	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, &ErrInvalidResponse{
				Err: fmt.Errorf("embedding index %d out of range", d.Index),
			}
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}

func (e *OpenAIEmbedder) ModelID() string { return e.model }
