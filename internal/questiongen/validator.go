package questiongen

import "fmt"

// Validator checks a generated question before it is issued.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g.
	// "structural", "grounding".
	Name() string

	// Validate returns nil if the question passes, or a
	// ValidationError describing the failure.
	Validate(q *QuestionRecord, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// GenerationFailure is returned when question generation cannot
// produce a valid question within the configured attempt budget.
type GenerationFailure struct {
	Attempts int
	Err      error // last underlying failure
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("question generation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GenerationFailure) Unwrap() error {
	return e.Err
}
