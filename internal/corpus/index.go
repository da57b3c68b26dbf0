package corpus

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/abhisek/riskdrill/internal/llm"
)

// Filter narrows a query to a topic and/or a difficulty range. Zero
// values leave the corresponding dimension unconstrained.
type Filter struct {
	Topic         string // "" matches any topic
	MinDifficulty int    // 0 = no lower bound
	MaxDifficulty int    // 0 = no upper bound
}

func (f Filter) matches(c Chunk) bool {
	if f.Topic != "" && c.Topic != f.Topic {
		return false
	}
	if f.MinDifficulty > 0 && c.Difficulty < f.MinDifficulty {
		return false
	}
	if f.MaxDifficulty > 0 && c.Difficulty > f.MaxDifficulty {
		return false
	}
	return true
}

// ScoredChunk is a query hit with its cosine similarity.
type ScoredChunk struct {
	Chunk      Chunk
	Similarity float64
}

// BuildResult summarizes one corpus build.
type BuildResult struct {
	Version        int64
	RecordCount    int
	ChunkCount     int
	EmbeddingModel string
}

// Stats describes the indexed corpus for reporting.
type Stats struct {
	Version        int64
	ChunkCount     int
	EmbeddingModel string
	ByTopic        map[string]int
	ByDifficulty   map[int]int
}

// indexState is one immutable corpus version. Queries read whichever
// state pointer they observe; a rebuild swaps in a complete new state,
// so readers see either the old version or the new one, never a mix.
type indexState struct {
	version int64
	chunks  []Chunk
	model   string
}

// Index holds the chunked, embedded corpus and answers filtered
// nearest-neighbor queries. Safe for concurrent queries; builds are
// serialized and atomic.
type Index struct {
	cfg     Config
	buildMu sync.Mutex
	state   atomic.Pointer[indexState]
}

// NewIndex returns an empty Index with the given chunking config.
func NewIndex(cfg Config) *Index {
	idx := &Index{cfg: cfg}
	idx.state.Store(&indexState{})
	return idx
}

// Build chunks, embeds, and indexes the records as a new corpus
// version, replacing any previous version atomically.
func (idx *Index) Build(ctx context.Context, records []RawRecord, embedder llm.Embedder) (*BuildResult, error) {
	idx.buildMu.Lock()
	defer idx.buildMu.Unlock()

	if err := idx.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("corpus config: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no corpus records to index")
	}

	splitter := NewSplitter(idx.cfg.MaxChunkChars, idx.cfg.OverlapChars)

	var chunks []Chunk
	for _, rec := range records {
		for _, doc := range expandRecord(rec) {
			for _, piece := range splitter.Split(doc) {
				order := len(chunks)
				chunks = append(chunks, Chunk{
					ID:         fmt.Sprintf("c%05d", order),
					Text:       piece,
					Topic:      rec.Metadata.Topic,
					Difficulty: rec.Metadata.Difficulty,
					Source:     rec.Metadata.Source,
					Order:      order,
				})
			}
		}
	}

	if err := idx.embedChunks(ctx, chunks, embedder); err != nil {
		return nil, err
	}

	old := idx.state.Load()
	next := &indexState{
		version: old.version + 1,
		chunks:  chunks,
		model:   embedder.ModelID(),
	}
	idx.state.Store(next)

	return &BuildResult{
		Version:        next.version,
		RecordCount:    len(records),
		ChunkCount:     len(chunks),
		EmbeddingModel: next.model,
	}, nil
}

func (idx *Index) embedChunks(ctx context.Context, chunks []Chunk, embedder llm.Embedder) error {
	batch := idx.cfg.EmbedBatchSize
	for i := 0; i < len(chunks); i += batch {
		end := i + batch
		if end > len(chunks) {
			end = len(chunks)
		}

		texts := make([]string, 0, end-i)
		for _, c := range chunks[i:end] {
			texts = append(texts, c.Text)
		}

		vectors, err := embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed chunks %d-%d: %w", i, end-1, err)
		}
		if len(vectors) != len(texts) {
			return fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
		}
		for j, v := range vectors {
			chunks[i+j].Embedding = v
		}
	}
	return nil
}

// Query returns up to k chunks matching the filter, ordered by cosine
// similarity to the query embedding. Ties keep original corpus order.
// No matching chunks yields an empty result, not an error.
func (idx *Index) Query(embedding []float32, k int, f Filter) []ScoredChunk {
	state := idx.state.Load()
	if k <= 0 || len(state.chunks) == 0 {
		return nil
	}

	var hits []ScoredChunk
	for _, c := range state.chunks {
		if !f.matches(c) {
			continue
		}
		hits = append(hits, ScoredChunk{
			Chunk:      c,
			Similarity: cosineSimilarity(embedding, c.Embedding),
		})
	}

	// Chunks are scanned in corpus order, so a stable sort breaks
	// similarity ties by original position.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

// Version returns the current corpus version, 0 before the first build.
func (idx *Index) Version() int64 {
	return idx.state.Load().version
}

// Count returns the number of indexed chunks.
func (idx *Index) Count() int {
	return len(idx.state.Load().chunks)
}

// Topics returns the distinct topics in the corpus, sorted.
func (idx *Index) Topics() []string {
	state := idx.state.Load()
	seen := make(map[string]bool)
	var topics []string
	for _, c := range state.chunks {
		if !seen[c.Topic] {
			seen[c.Topic] = true
			topics = append(topics, c.Topic)
		}
	}
	sort.Strings(topics)
	return topics
}

// Stats returns chunk counts by topic and difficulty for reporting.
func (idx *Index) Stats() Stats {
	state := idx.state.Load()
	st := Stats{
		Version:        state.version,
		ChunkCount:     len(state.chunks),
		EmbeddingModel: state.model,
		ByTopic:        make(map[string]int),
		ByDifficulty:   make(map[int]int),
	}
	for _, c := range state.chunks {
		st.ByTopic[c.Topic]++
		st.ByDifficulty[c.Difficulty]++
	}
	return st
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. Mismatched or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
