package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/llm"
	"github.com/abhisek/riskdrill/internal/questiongen"
)

func testInput() EvaluateInput {
	return EvaluateInput{
		Question: &questiongen.QuestionRecord{
			Text:               "How do RTO and RPO differ?",
			ReferenceAnswer:    "RTO bounds downtime; RPO bounds acceptable data loss.",
			SupportingChunkIDs: []string{"c00002", "c00003"},
			Difficulty:         2,
			Topic:              "rto-rpo",
		},
		Passages: []corpus.Chunk{
			{ID: "c00001", Text: "Question: What does RTO stand for?"},
			{ID: "c00002", Text: "Answer: Recovery Time Objective."},
			{ID: "c00003", Text: "Answer: RPO bounds acceptable data loss."},
		},
		UserAnswer: "RTO is about downtime, RPO is about how much data you can lose.",
	}
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryBaseDelay = time.Millisecond
	return cfg
}

func TestEvaluatePassingAnswer(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.9, "rationale": "Correct on both objectives.", "matched_chunk_ids": ["c00002", "c00003"]}`),
	})
	e := New(provider, fastConfig())

	result, err := e.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !result.IsPass {
		t.Error("expected pass at score 0.9")
	}
	if result.Score != 0.9 {
		t.Errorf("score = %f, want 0.9", result.Score)
	}
	if len(result.MatchedChunkIDs) != 2 {
		t.Errorf("matched = %d, want 2", len(result.MatchedChunkIDs))
	}
}

func TestEvaluateFailingAnswer(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.2, "rationale": "The answer confuses RTO with RPO.", "matched_chunk_ids": ["c00002"]}`),
	})
	e := New(provider, fastConfig())

	result, err := e.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.IsPass {
		t.Error("expected fail at score 0.2")
	}
}

func TestEvaluateDiscardsUnsupportedMatches(t *testing.T) {
	// c00001 was not cited by the question, so it cannot count.
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.8, "rationale": "Good.", "matched_chunk_ids": ["c00001", "c00002"]}`),
	})
	e := New(provider, fastConfig())

	result, err := e.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(result.MatchedChunkIDs) != 1 || result.MatchedChunkIDs[0] != "c00002" {
		t.Errorf("matched = %v, want [c00002]", result.MatchedChunkIDs)
	}
	if result.Score != 0.8 {
		t.Errorf("score = %f, want 0.8 (still grounded via c00002)", result.Score)
	}
}

func TestEvaluateUngroundedAnswerCapped(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.95, "rationale": "Plausible but off-material.", "matched_chunk_ids": []}`),
	})
	e := New(provider, fastConfig())

	result, err := e.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Score != 0.5 {
		t.Errorf("score = %f, want capped at 0.5", result.Score)
	}
	if result.IsPass {
		t.Error("capped ungrounded answer must not pass at threshold 0.7")
	}
	if !strings.HasPrefix(result.Rationale, "Low confidence:") {
		t.Errorf("rationale = %q, want low-confidence prefix", result.Rationale)
	}
}

func TestEvaluateClampsScore(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 1.7, "rationale": "Over-eager grader.", "matched_chunk_ids": ["c00002"]}`),
	})
	e := New(provider, fastConfig())

	result, err := e.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("score = %f, want clamped to 1", result.Score)
	}
}

func TestEvaluateDeterministicUnderStub(t *testing.T) {
	canned := json.RawMessage(`{"score": 0.75, "rationale": "Same inputs, same grade.", "matched_chunk_ids": ["c00003"]}`)

	var scores []float64
	for i := 0; i < 3; i++ {
		provider := llm.NewMockProvider(llm.MockResponse{Content: canned})
		e := New(provider, fastConfig())
		result, err := e.Evaluate(context.Background(), testInput())
		if err != nil {
			t.Fatalf("evaluate %d: %v", i, err)
		}
		scores = append(scores, result.Score)
	}
	for _, s := range scores {
		if s != scores[0] {
			t.Fatalf("scores = %v, want identical", scores)
		}
	}
}

func TestEvaluateRetriesMalformedOutput(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
		llm.MockResponse{Content: json.RawMessage(`{"score": 0.8, "rationale": "Fine.", "matched_chunk_ids": ["c00002"]}`)},
	)
	e := New(provider, fastConfig())

	result, err := e.Evaluate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if provider.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", provider.CallCount())
	}
	if result.Score != 0.8 {
		t.Errorf("score = %f, want 0.8", result.Score)
	}
}

func TestEvaluateFailureAfterExhaustedAttempts(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`bad`)},
		llm.MockResponse{Content: json.RawMessage(`bad`)},
		llm.MockResponse{Content: json.RawMessage(`bad`)},
	)
	e := New(provider, fastConfig())

	_, err := e.Evaluate(context.Background(), testInput())
	var gf *questiongen.GenerationFailure
	if !errors.As(err, &gf) {
		t.Fatalf("err = %v, want *GenerationFailure", err)
	}
	if gf.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", gf.Attempts)
	}
}

func TestEvaluatePromptOnlyIncludesSupportingPassages(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.8, "rationale": "Fine.", "matched_chunk_ids": ["c00002"]}`),
	})
	e := New(provider, fastConfig())

	if _, err := e.Evaluate(context.Background(), testInput()); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	msg := provider.Calls[0].Messages[0].Content
	if strings.Contains(msg, "[c00001]") {
		t.Error("prompt includes passage the question did not cite")
	}
	for _, id := range []string{"c00002", "c00003"} {
		if !strings.Contains(msg, "["+id+"]") {
			t.Errorf("prompt missing supporting passage %s", id)
		}
	}
}
