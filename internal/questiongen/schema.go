package questiongen

import "github.com/abhisek/riskdrill/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "assessment-question",
	Description: "A single business-continuity assessment question grounded in the supplied passages",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question shown to the learner, answerable from the supplied passages alone",
			},
			"reference_answer": map[string]any{
				"type":        "string",
				"description": "The model answer, stated fully enough to grade a free-text response against",
			},
			"supporting_chunk_ids": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    1,
				"description": "IDs of the passages the question and reference answer are drawn from",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (single fact) to 5 (multi-step scenario)",
			},
		},
		"required":             []any{"question_text", "reference_answer", "supporting_chunk_ids", "difficulty"},
		"additionalProperties": false,
	},
}
