package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiEmbeddingModel = "text-embedding-004"

// GeminiEmbedder implements Embedder using the Gemini embeddings API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an embedder backed by Gemini.
func NewGeminiEmbedder(ctx context.Context, cfg GeminiConfig, emb EmbeddingConfig) (*GeminiEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := emb.Model
	if model == "" {
		model = defaultGeminiEmbeddingModel
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, t := range texts {
		contents[i] = &genai.Content{Parts: []*genai.Part{{Text: t}}}
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	if len(result.Embeddings) != len(texts) {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(result.Embeddings)),
		}
	}

	out := make([][]float32, len(texts))
	for i, emb := range result.Embeddings {
		out[i] = emb.Values
	}
	return out, nil
}

func (e *GeminiEmbedder) ModelID() string { return e.model }
