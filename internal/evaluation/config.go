package evaluation

import "time"

// Config controls grading behavior.
type Config struct {
	// PassThreshold is the minimum score that counts as a pass.
	PassThreshold float64

	// UngroundedScoreCap bounds the score of an answer that matches
	// none of the question's supporting passages; such answers are
	// graded on topical relevance only.
	UngroundedScoreCap float64

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness. Grading wants
	// near-deterministic output.
	Temperature float64

	// MaxAttempts bounds how many times evaluation is retried when
	// the output is malformed.
	MaxAttempts int

	// RetryBaseDelay is the backoff before the second attempt; it
	// doubles on each further attempt.
	RetryBaseDelay time.Duration
}

// DefaultConfig returns the recommended grading defaults.
func DefaultConfig() Config {
	return Config{
		PassThreshold:      0.7,
		UngroundedScoreCap: 0.5,
		MaxTokens:          512,
		Temperature:        0.2,
		MaxAttempts:        3,
		RetryBaseDelay:     500 * time.Millisecond,
	}
}
