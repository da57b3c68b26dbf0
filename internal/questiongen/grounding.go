package questiongen

import "fmt"

// GroundingValidator enforces the retrieval-augmentation contract: the
// question must cite at least one supplied passage, and only supplied
// passages.
type GroundingValidator struct{}

func (v *GroundingValidator) Name() string { return "grounding" }

func (v *GroundingValidator) Validate(q *QuestionRecord, input GenerateInput) *ValidationError {
	if len(q.SupportingChunkIDs) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "no supporting passages cited",
			Retryable: true,
		}
	}

	supplied := make(map[string]bool, len(input.Passages))
	for _, p := range input.Passages {
		supplied[p.ID] = true
	}
	for _, id := range q.SupportingChunkIDs {
		if !supplied[id] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("cited passage %q was not supplied", id),
				Retryable: true,
			}
		}
	}
	return nil
}
