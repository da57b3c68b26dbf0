package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/riskdrill/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText       string   `json:"question_text"`
	ReferenceAnswer    string   `json:"reference_answer"`
	SupportingChunkIDs []string `json:"supporting_chunk_ids"`
	Difficulty         int      `json:"difficulty"`
}

// Generate produces a single grounded question for the input context,
// retrying with backoff on malformed output or retryable validation
// failures until the attempt budget runs out.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*QuestionRecord, error) {
	if len(input.Passages) == 0 {
		return nil, fmt.Errorf("no passages to ground the question in")
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	var lastErr error
	attempts := 0
	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := g.config.RetryBaseDelay << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		q, err := g.generateOnce(ctx, input)
		attempts++
		if err == nil {
			return q, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
	}

	return nil, &GenerationFailure{Attempts: attempts, Err: lastErr}
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) (*QuestionRecord, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ValidationError{
			Validator: "parse",
			Message:   fmt.Sprintf("unparseable LLM response: %v", err),
			Retryable: true,
		}
	}

	q := &QuestionRecord{
		Text:               raw.QuestionText,
		ReferenceAnswer:    raw.ReferenceAnswer,
		SupportingChunkIDs: raw.SupportingChunkIDs,
		Difficulty:         raw.Difficulty,
		Topic:              input.Topic,
		IssuedAt:           g.now(),
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// retryable reports whether another generation attempt could succeed:
// retryable validation failures and invalid-response errors qualify;
// provider unavailability and context cancellation do not (the provider
// chain already retries rate limits internally).
func retryable(err error) bool {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Retryable
	}
	var invalid *llm.ErrInvalidResponse
	return errors.As(err, &invalid)
}
