package corpus

import (
	"context"
	"testing"

	"github.com/abhisek/riskdrill/internal/llm"
)

func testRecords() []RawRecord {
	return []RawRecord{
		{
			Prompt:   "What does RTO stand for?",
			Response: "Recovery Time Objective.",
			Metadata: Metadata{Difficulty: 1, Topic: "rto-rpo", Source: "guide"},
		},
		{
			Prompt:   "How is RPO different from RTO?",
			Response: "RPO bounds data loss; RTO bounds downtime.",
			Metadata: Metadata{Difficulty: 3, Topic: "rto-rpo", Source: "guide"},
		},
		{
			Prompt:   "Name the phases of a business impact analysis.",
			Response: "Scoping, data gathering, impact assessment, reporting.",
			Metadata: Metadata{Difficulty: 2, Topic: "impact-analysis", Source: "guide"},
		},
	}
}

func buildTestIndex(t *testing.T) (*Index, *llm.MockEmbedder) {
	t.Helper()
	idx := NewIndex(DefaultConfig())
	embedder := llm.NewMockEmbedder(32)

	result, err := idx.Build(context.Background(), testRecords(), embedder)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result.Version != 1 {
		t.Fatalf("version = %d, want 1", result.Version)
	}
	return idx, embedder
}

func embedQuery(t *testing.T, embedder *llm.MockEmbedder, text string) []float32 {
	t.Helper()
	vecs, err := embedder.Embed(context.Background(), []string{text})
	if err != nil {
		t.Fatalf("embed query: %v", err)
	}
	return vecs[0]
}

func TestBuildProducesChunks(t *testing.T) {
	idx, _ := buildTestIndex(t)

	// 3 records x (question, answer, combined), all short enough to
	// stay whole.
	if idx.Count() != 9 {
		t.Errorf("count = %d, want 9", idx.Count())
	}

	stats := idx.Stats()
	if stats.ByTopic["rto-rpo"] != 6 {
		t.Errorf("rto-rpo chunks = %d, want 6", stats.ByTopic["rto-rpo"])
	}
	if stats.ByDifficulty[2] != 3 {
		t.Errorf("difficulty-2 chunks = %d, want 3", stats.ByDifficulty[2])
	}
	if stats.EmbeddingModel == "" {
		t.Error("expected embedding model recorded")
	}
}

func TestBuildEmptyCorpusFails(t *testing.T) {
	idx := NewIndex(DefaultConfig())
	_, err := idx.Build(context.Background(), nil, llm.NewMockEmbedder(32))
	if err == nil {
		t.Fatal("expected error for empty corpus")
	}
}

func TestQueryExactTextRanksFirst(t *testing.T) {
	idx, embedder := buildTestIndex(t)

	q := embedQuery(t, embedder, "Question: What does RTO stand for?")
	hits := idx.Query(q, 3, Filter{})
	if len(hits) != 3 {
		t.Fatalf("hits = %d, want 3", len(hits))
	}
	if hits[0].Chunk.Text != "Question: What does RTO stand for?" {
		t.Errorf("top hit = %q, want the exact question chunk", hits[0].Chunk.Text)
	}
	if hits[0].Similarity < 0.999 {
		t.Errorf("top similarity = %f, want ~1", hits[0].Similarity)
	}
}

func TestQueryTopicFilter(t *testing.T) {
	idx, embedder := buildTestIndex(t)

	q := embedQuery(t, embedder, "impact analysis")
	hits := idx.Query(q, 10, Filter{Topic: "impact-analysis"})
	if len(hits) != 3 {
		t.Fatalf("hits = %d, want 3", len(hits))
	}
	for _, h := range hits {
		if h.Chunk.Topic != "impact-analysis" {
			t.Errorf("hit topic = %q, want impact-analysis", h.Chunk.Topic)
		}
	}
}

func TestQueryDifficultyWindow(t *testing.T) {
	idx, embedder := buildTestIndex(t)

	q := embedQuery(t, embedder, "recovery")
	hits := idx.Query(q, 10, Filter{MinDifficulty: 2, MaxDifficulty: 3})
	if len(hits) != 6 {
		t.Fatalf("hits = %d, want 6 (difficulty 2 and 3 chunks)", len(hits))
	}
	for _, h := range hits {
		if h.Chunk.Difficulty < 2 || h.Chunk.Difficulty > 3 {
			t.Errorf("hit difficulty = %d, want within [2,3]", h.Chunk.Difficulty)
		}
	}
}

func TestQueryNoMatchReturnsEmpty(t *testing.T) {
	idx, embedder := buildTestIndex(t)

	q := embedQuery(t, embedder, "anything")
	hits := idx.Query(q, 3, Filter{Topic: "no-such-topic"})
	if len(hits) != 0 {
		t.Fatalf("hits = %d, want 0", len(hits))
	}
}

func TestQueryBeforeBuildReturnsEmpty(t *testing.T) {
	idx := NewIndex(DefaultConfig())
	if hits := idx.Query([]float32{1, 0}, 3, Filter{}); len(hits) != 0 {
		t.Fatalf("hits = %d, want 0", len(hits))
	}
}

func TestQueryTieBreaksByCorpusOrder(t *testing.T) {
	// Two prompt-only records with identical text produce identical
	// embeddings; order must decide.
	records := []RawRecord{
		{Prompt: "Define residual risk.", Metadata: Metadata{Difficulty: 2, Topic: "first"}},
		{Prompt: "Define residual risk.", Metadata: Metadata{Difficulty: 2, Topic: "second"}},
	}

	idx := NewIndex(DefaultConfig())
	embedder := llm.NewMockEmbedder(32)
	if _, err := idx.Build(context.Background(), records, embedder); err != nil {
		t.Fatalf("build: %v", err)
	}

	q := embedQuery(t, embedder, "Question: Define residual risk.")
	hits := idx.Query(q, 2, Filter{})
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].Chunk.Topic != "first" || hits[1].Chunk.Topic != "second" {
		t.Errorf("tie order = %q, %q; want corpus order first, second",
			hits[0].Chunk.Topic, hits[1].Chunk.Topic)
	}
}

func TestRebuildReplacesVersionAtomically(t *testing.T) {
	idx, _ := buildTestIndex(t)

	replacement := []RawRecord{
		{Prompt: "Only record.", Metadata: Metadata{Difficulty: 1, Topic: "solo"}},
	}
	result, err := idx.Build(context.Background(), replacement, llm.NewMockEmbedder(32))
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if result.Version != 2 {
		t.Errorf("version = %d, want 2", result.Version)
	}
	if idx.Count() != 1 {
		t.Errorf("count = %d, want 1 (old chunks gone)", idx.Count())
	}
	if topics := idx.Topics(); len(topics) != 1 || topics[0] != "solo" {
		t.Errorf("topics = %v, want [solo]", topics)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"mismatched dims", []float32{1}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosine = %f, want %f", got, tt.want)
			}
		})
	}
}
