// Package retrieval turns a topic/difficulty target into a ranked set
// of corpus passages, relaxing its filters before it ever comes back
// empty-handed.
package retrieval

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/llm"
)

// ErrCorpusExhausted is returned when no passages exist even after the
// full fallback chain, i.e. the corpus is empty.
var ErrCorpusExhausted = errors.New("corpus exhausted: no passages available")

// Config controls passage selection.
type Config struct {
	// K is how many passages a retrieval aims for.
	K int

	// DifficultyWindow widens the difficulty filter to
	// [difficulty-window, difficulty+window] in the primary stage.
	DifficultyWindow int
}

// DefaultConfig returns the recommended retrieval defaults.
func DefaultConfig() Config {
	return Config{
		K:                3,
		DifficultyWindow: 1,
	}
}

// Retriever answers passage requests against the corpus index,
// embedding the query and applying the fallback chain: topic +
// difficulty window, then topic only, then the whole corpus.
type Retriever struct {
	index    *corpus.Index
	embedder llm.Embedder
	cfg      Config
}

// New returns a Retriever over the given index and embedder.
func New(index *corpus.Index, embedder llm.Embedder, cfg Config) *Retriever {
	return &Retriever{index: index, embedder: embedder, cfg: cfg}
}

// Retrieve returns up to K passages for the topic at the requested
// difficulty. The result is shorter than K only when the whole corpus
// holds fewer than K chunks; an empty corpus yields ErrCorpusExhausted.
func (r *Retriever) Retrieve(ctx context.Context, topic string, difficulty int) ([]corpus.Chunk, error) {
	vectors, err := r.embedder.Embed(ctx, []string{topic})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	query := vectors[0]

	minDifficulty := difficulty - r.cfg.DifficultyWindow
	if minDifficulty < 1 {
		minDifficulty = 1
	}

	// Filters from strictest to loosest. Stop at the first stage that
	// fills the request; later stages only run on sparse coverage.
	stages := []corpus.Filter{
		{Topic: topic, MinDifficulty: minDifficulty, MaxDifficulty: difficulty + r.cfg.DifficultyWindow},
		{Topic: topic},
		{},
	}

	var hits []corpus.ScoredChunk
	for _, filter := range stages {
		hits = r.index.Query(query, r.cfg.K, filter)
		if len(hits) >= r.cfg.K {
			break
		}
	}

	if len(hits) == 0 {
		return nil, ErrCorpusExhausted
	}

	chunks := make([]corpus.Chunk, 0, len(hits))
	for _, h := range hits {
		chunks = append(chunks, h.Chunk)
	}
	return chunks, nil
}
