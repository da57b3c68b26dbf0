package questiongen

import "fmt"

// StructuralValidator checks that required fields are present and the
// difficulty is in range.
type StructuralValidator struct {
	// MaxDifficulty is the highest allowed tier. Zero falls back to
	// the default tier count.
	MaxDifficulty int
}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *QuestionRecord, input GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: true,
		}
	}
	if q.ReferenceAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "reference answer is empty",
			Retryable: true,
		}
	}
	maxLevel := v.MaxDifficulty
	if maxLevel <= 0 {
		maxLevel = defaultMaxDifficulty
	}
	if q.Difficulty < 1 || q.Difficulty > maxLevel {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("difficulty out of range 1-%d", maxLevel),
			Retryable: true,
		}
	}
	return nil
}
