package questiongen

import "time"

// defaultMaxDifficulty matches the proficiency model's default tier
// count. Callers running a different tier count construct the
// StructuralValidator with their own MaxDifficulty.
const defaultMaxDifficulty = 5

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts bounds how many times generation is retried when
	// the output is malformed or fails a retryable validator.
	MaxAttempts int

	// RetryBaseDelay is the backoff before the second attempt; it
	// doubles on each further attempt.
	RetryBaseDelay time.Duration

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{MaxDifficulty: defaultMaxDifficulty},
			&GroundingValidator{},
		},
		MaxTokens:         768,
		Temperature:       0.7,
		MaxAttempts:       3,
		RetryBaseDelay:    500 * time.Millisecond,
		MaxPriorQuestions: 8,
	}
}
