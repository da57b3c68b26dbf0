package evaluation

import "github.com/abhisek/riskdrill/internal/llm"

// EvaluationSchema defines the JSON schema for LLM grading responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A grade for a free-text answer against reference material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How well the answer matches the reference material, 0 (wrong) to 1 (complete and correct)",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "A short explanation of the grade, addressed to the learner",
			},
			"matched_chunk_ids": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "IDs of the supporting passages the answer engages with. Empty if the answer ignores the cited material.",
			},
		},
		"required":             []any{"score", "rationale", "matched_chunk_ids"},
		"additionalProperties": false,
	},
}
