package retrieval

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/llm"
)

func record(topic string, difficulty, n int) corpus.RawRecord {
	return corpus.RawRecord{
		Prompt:   fmt.Sprintf("%s question %d at tier %d", topic, n, difficulty),
		Metadata: corpus.Metadata{Difficulty: difficulty, Topic: topic, Source: "test"},
	}
}

func buildIndex(t *testing.T, records []corpus.RawRecord) (*corpus.Index, *llm.MockEmbedder) {
	t.Helper()
	idx := corpus.NewIndex(corpus.DefaultConfig())
	embedder := llm.NewMockEmbedder(32)
	if _, err := idx.Build(context.Background(), records, embedder); err != nil {
		t.Fatalf("build index: %v", err)
	}
	return idx, embedder
}

func TestRetrievePrimaryFilter(t *testing.T) {
	records := []corpus.RawRecord{
		record("rto-rpo", 1, 1),
		record("rto-rpo", 2, 2),
		record("rto-rpo", 3, 3),
		record("rto-rpo", 5, 4),
		record("impact-analysis", 2, 5),
	}
	idx, embedder := buildIndex(t, records)
	r := New(idx, embedder, DefaultConfig())

	chunks, err := r.Retrieve(context.Background(), "rto-rpo", 2)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	for _, c := range chunks {
		if c.Topic != "rto-rpo" {
			t.Errorf("chunk topic = %q, want rto-rpo", c.Topic)
		}
		if c.Difficulty < 1 || c.Difficulty > 3 {
			t.Errorf("chunk difficulty = %d, want within [1,3]", c.Difficulty)
		}
	}
}

func TestRetrieveDifficultyFallbackKeepsTopic(t *testing.T) {
	// Topic "rare" only has difficulty-5 chunks; a difficulty-2 request
	// must still return "rare" passages via the topic-only stage.
	records := []corpus.RawRecord{
		record("rare", 5, 1),
		record("rare", 5, 2),
		record("rare", 5, 3),
		record("rare", 5, 4),
		record("rare", 5, 5),
		record("common", 2, 6),
	}
	idx, embedder := buildIndex(t, records)
	r := New(idx, embedder, DefaultConfig())

	chunks, err := r.Retrieve(context.Background(), "rare", 2)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	for _, c := range chunks {
		if c.Topic != "rare" {
			t.Errorf("chunk topic = %q, want rare", c.Topic)
		}
	}
}

func TestRetrieveWholeCorpusFallback(t *testing.T) {
	// Unknown topic: both topic stages come up empty, the whole-corpus
	// stage still produces passages.
	records := []corpus.RawRecord{
		record("rto-rpo", 1, 1),
		record("rto-rpo", 2, 2),
		record("impact-analysis", 3, 3),
	}
	idx, embedder := buildIndex(t, records)
	r := New(idx, embedder, DefaultConfig())

	chunks, err := r.Retrieve(context.Background(), "no-such-topic", 1)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
}

func TestRetrieveFewerThanKOnlyWhenCorpusSmall(t *testing.T) {
	records := []corpus.RawRecord{
		record("rto-rpo", 1, 1),
	}
	idx, embedder := buildIndex(t, records)
	r := New(idx, embedder, DefaultConfig())

	chunks, err := r.Retrieve(context.Background(), "anything", 4)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1 (whole corpus)", len(chunks))
	}
}

func TestRetrieveEmptyCorpus(t *testing.T) {
	idx := corpus.NewIndex(corpus.DefaultConfig())
	embedder := llm.NewMockEmbedder(32)
	r := New(idx, embedder, DefaultConfig())

	_, err := r.Retrieve(context.Background(), "rto-rpo", 1)
	if !errors.Is(err, ErrCorpusExhausted) {
		t.Fatalf("err = %v, want ErrCorpusExhausted", err)
	}
}

func TestRetrieveNeverExceedsK(t *testing.T) {
	var records []corpus.RawRecord
	for i := 0; i < 20; i++ {
		records = append(records, record("rto-rpo", 1+i%5, i))
	}
	idx, embedder := buildIndex(t, records)

	cfg := DefaultConfig()
	cfg.K = 5
	r := New(idx, embedder, cfg)

	chunks, err := r.Retrieve(context.Background(), "rto-rpo", 3)
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if len(chunks) != 5 {
		t.Fatalf("chunks = %d, want exactly K=5", len(chunks))
	}
}
