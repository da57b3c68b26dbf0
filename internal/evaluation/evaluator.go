// Package evaluation scores free-text answers against a question's
// reference answer and its supporting corpus passages.
package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/llm"
	"github.com/abhisek/riskdrill/internal/questiongen"
)

// EvaluationResult is the outcome of grading one answer.
type EvaluationResult struct {
	// Score is the grade in [0,1].
	Score float64

	// IsPass is Score >= the configured pass threshold.
	IsPass bool

	// Rationale explains the grade; shown to the learner as feedback.
	Rationale string

	// MatchedChunkIDs names the supporting passages the answer actually
	// engaged with. Always a subset of the question's
	// SupportingChunkIDs.
	MatchedChunkIDs []string
}

// EvaluateInput carries a question, the passages it was grounded in,
// and the learner's answer.
type EvaluateInput struct {
	Question   *questiongen.QuestionRecord
	Passages   []corpus.Chunk
	UserAnswer string
}

// Evaluator grades free-text answers.
type Evaluator interface {
	// Evaluate scores the answer against the question's reference
	// material. Exhausted retries surface as
	// *questiongen.GenerationFailure.
	Evaluate(ctx context.Context, input EvaluateInput) (*EvaluationResult, error)
}

// LLMEvaluator implements Evaluator using the LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMEvaluator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, config: cfg}
}

// evaluationOutput is the raw LLM response before normalization.
type evaluationOutput struct {
	Score           float64  `json:"score"`
	Rationale       string   `json:"rationale"`
	MatchedChunkIDs []string `json:"matched_chunk_ids"`
}

// Evaluate grades the answer, retrying with backoff on malformed
// output until the attempt budget runs out.
func (e *LLMEvaluator) Evaluate(ctx context.Context, input EvaluateInput) (*EvaluationResult, error) {
	if input.Question == nil {
		return nil, fmt.Errorf("no question to evaluate against")
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")

	var lastErr error
	attempts := 0
	for attempt := 0; attempt < e.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := e.config.RetryBaseDelay << (attempt - 1)
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}
		}

		result, err := e.evaluateOnce(ctx, input)
		attempts++
		if err == nil {
			return result, nil
		}
		lastErr = err

		var invalid *llm.ErrInvalidResponse
		if !errors.As(err, &invalid) && !errors.Is(err, errMalformedEvaluation) {
			break
		}
	}

	return nil, &questiongen.GenerationFailure{Attempts: attempts, Err: lastErr}
}

var errMalformedEvaluation = errors.New("malformed evaluation output")

func (e *LLMEvaluator) evaluateOnce(ctx context.Context, input EvaluateInput) (*EvaluationResult, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedEvaluation, err)
	}

	return e.normalize(input.Question, raw), nil
}

// normalize applies the grounding policy: matched passages outside the
// question's supporting set are discarded, and an answer matching no
// supporting passage is graded on topical relevance only, with its
// score capped and the low confidence stated in the rationale.
func (e *LLMEvaluator) normalize(q *questiongen.QuestionRecord, raw evaluationOutput) *EvaluationResult {
	score := raw.Score
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	supporting := make(map[string]bool, len(q.SupportingChunkIDs))
	for _, id := range q.SupportingChunkIDs {
		supporting[id] = true
	}

	var matched []string
	for _, id := range raw.MatchedChunkIDs {
		if supporting[id] {
			matched = append(matched, id)
		}
	}

	rationale := raw.Rationale
	if len(matched) == 0 {
		if score > e.config.UngroundedScoreCap {
			score = e.config.UngroundedScoreCap
		}
		rationale = "Low confidence: the answer does not engage with the cited material. " + rationale
	}

	return &EvaluationResult{
		Score:           score,
		IsPass:          score >= e.config.PassThreshold,
		Rationale:       rationale,
		MatchedChunkIDs: matched,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
