package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/llm"
)

func testPassages() []corpus.Chunk {
	return []corpus.Chunk{
		{ID: "c00001", Text: "Question: What does RTO stand for?", Topic: "rto-rpo", Difficulty: 1},
		{ID: "c00002", Text: "Answer: Recovery Time Objective.", Topic: "rto-rpo", Difficulty: 1},
		{ID: "c00003", Text: "Answer: RPO bounds acceptable data loss.", Topic: "rto-rpo", Difficulty: 2},
	}
}

func testInput() GenerateInput {
	return GenerateInput{
		Topic:      "rto-rpo",
		Difficulty: 2,
		Passages:   testPassages(),
	}
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryBaseDelay = time.Millisecond
	return cfg
}

func validOutput() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "How do RTO and RPO differ?",
		"reference_answer": "RTO bounds downtime; RPO bounds acceptable data loss.",
		"supporting_chunk_ids": ["c00002", "c00003"],
		"difficulty": 2
	}`)
}

func TestGenerateValidQuestion(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	g := New(provider, fastConfig())

	q, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Text == "" || q.ReferenceAnswer == "" {
		t.Error("expected question text and reference answer")
	}
	if len(q.SupportingChunkIDs) != 2 {
		t.Errorf("supporting chunks = %d, want 2", len(q.SupportingChunkIDs))
	}
	if q.Topic != "rto-rpo" {
		t.Errorf("topic = %q, want rto-rpo", q.Topic)
	}
	if q.IssuedAt.IsZero() {
		t.Error("expected IssuedAt to be set")
	}
}

func TestGeneratePromptCarriesPassagesAndDedup(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	g := New(provider, fastConfig())

	input := testInput()
	input.PriorQuestions = []string{"What does RTO stand for?"}
	if _, err := g.Generate(context.Background(), input); err != nil {
		t.Fatalf("generate: %v", err)
	}

	msg := provider.Calls[0].Messages[0].Content
	for _, id := range []string{"c00001", "c00002", "c00003"} {
		if !strings.Contains(msg, "["+id+"]") {
			t.Errorf("prompt missing passage %s", id)
		}
	}
	if !strings.Contains(msg, "What does RTO stand for?") {
		t.Error("prompt missing prior question for deduplication")
	}
}

func TestGenerateRetriesUngroundedOutput(t *testing.T) {
	ungrounded := json.RawMessage(`{
		"question_text": "What is the capital of France?",
		"reference_answer": "Paris.",
		"supporting_chunk_ids": ["c99999"],
		"difficulty": 1
	}`)
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: ungrounded},
		llm.MockResponse{Content: validOutput()},
	)
	g := New(provider, fastConfig())

	q, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if provider.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (one retry)", provider.CallCount())
	}
	if q.SupportingChunkIDs[0] != "c00002" {
		t.Errorf("supporting chunk = %q, want c00002", q.SupportingChunkIDs[0])
	}
}

func TestGenerateRetriesMalformedJSON(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
		llm.MockResponse{Content: validOutput()},
	)
	g := New(provider, fastConfig())

	if _, err := g.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if provider.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", provider.CallCount())
	}
}

func TestGenerateFailureAfterExhaustedAttempts(t *testing.T) {
	bad := json.RawMessage(`{"question_text":"","reference_answer":"","supporting_chunk_ids":[],"difficulty":0}`)
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
	)
	g := New(provider, fastConfig())

	_, err := g.Generate(context.Background(), testInput())
	var gf *GenerationFailure
	if !errors.As(err, &gf) {
		t.Fatalf("err = %v, want *GenerationFailure", err)
	}
	if gf.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", gf.Attempts)
	}
	if provider.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", provider.CallCount())
	}
}

func TestGenerateDoesNotRetryProviderUnavailable(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(provider, fastConfig())

	_, err := g.Generate(context.Background(), testInput())
	var gf *GenerationFailure
	if !errors.As(err, &gf) {
		t.Fatalf("err = %v, want *GenerationFailure", err)
	}
	if provider.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", provider.CallCount())
	}
}

func TestGenerateRequiresPassages(t *testing.T) {
	g := New(llm.NewMockProvider(), fastConfig())

	input := testInput()
	input.Passages = nil
	if _, err := g.Generate(context.Background(), input); err == nil {
		t.Fatal("expected error for empty passages")
	}
}

func TestStructuralValidatorHonorsMaxDifficulty(t *testing.T) {
	input := testInput()

	tests := []struct {
		name       string
		max        int
		difficulty int
		wantErr    bool
	}{
		{"within default", 0, 5, false},
		{"above default", 0, 6, true},
		{"within custom", 3, 3, false},
		{"above custom", 3, 4, true},
		{"below floor", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &StructuralValidator{MaxDifficulty: tt.max}
			q := &QuestionRecord{
				Text:            "Question?",
				ReferenceAnswer: "Reference.",
				Difficulty:      tt.difficulty,
			}
			err := v.Validate(q, input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestGroundingValidator(t *testing.T) {
	v := &GroundingValidator{}
	input := testInput()

	tests := []struct {
		name    string
		ids     []string
		wantErr bool
	}{
		{"subset", []string{"c00001"}, false},
		{"all", []string{"c00001", "c00002", "c00003"}, false},
		{"empty", nil, true},
		{"unknown id", []string{"c00001", "bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &QuestionRecord{SupportingChunkIDs: tt.ids}
			err := v.Validate(q, input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate = %v, wantErr %t", err, tt.wantErr)
			}
			if err != nil && !err.Retryable {
				t.Error("grounding failures should be retryable")
			}
		})
	}
}

