package questiongen

import (
	"context"
	"time"

	"github.com/abhisek/riskdrill/internal/corpus"
)

// QuestionRecord is a generated question ready to be asked. It is
// created here, consumed once by the answer evaluator, and then kept
// only in the event log.
type QuestionRecord struct {
	// Text is the question shown to the learner.
	Text string

	// ReferenceAnswer is the model answer the evaluation scores against.
	ReferenceAnswer string

	// SupportingChunkIDs names the corpus passages the question was
	// drawn from, in citation order. Always non-empty and always a
	// subset of the passages supplied at generation time.
	SupportingChunkIDs []string

	// Difficulty is the tier the question was generated for.
	Difficulty int

	// Topic is the methodology topic the question covers.
	Topic string

	// IssuedAt is when the question was produced.
	IssuedAt time.Time
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Topic is the methodology topic to ask about.
	Topic string

	// Difficulty is the target tier (1..max level).
	Difficulty int

	// Passages are the retrieved corpus chunks the question must be
	// grounded in.
	Passages []corpus.Chunk

	// PriorQuestions contains the text of questions already asked in
	// this lesson, for deduplication in the prompt.
	PriorQuestions []string
}

// Generator produces grounded questions.
type Generator interface {
	// Generate produces a single validated question for the input
	// context. Exhausted retries surface as *GenerationFailure.
	Generate(ctx context.Context, input GenerateInput) (*QuestionRecord, error)
}
