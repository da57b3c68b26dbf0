package evaluation

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are grading a bank employee's answer in a business-continuity risk methodology assessment.

Rules:
- Grade the answer against the reference answer and the supporting passages, not against general knowledge.
- An answer that restates the reference material accurately in its own words deserves full credit; exact wording is not required.
- An answer that is factually plausible but ignores the cited passages must be graded on topical relevance only and marked as matching no passages.
- A partially correct answer gets a proportional score; name what is missing in the rationale.
- List in matched_chunk_ids the supporting passages the answer actually engages with.
- Keep the rationale short and addressed to the learner.`

// buildUserMessage constructs the grading request from the question,
// its supporting passages, and the learner's answer.
func buildUserMessage(input EvaluateInput) string {
	q := input.Question
	supporting := make(map[string]bool, len(q.SupportingChunkIDs))
	for _, id := range q.SupportingChunkIDs {
		supporting[id] = true
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	fmt.Fprintf(&b, "Reference answer: %s\n", q.ReferenceAnswer)

	b.WriteString("\nSupporting passages:\n")
	for _, p := range input.Passages {
		if !supporting[p.ID] {
			continue
		}
		fmt.Fprintf(&b, "[%s] %s\n", p.ID, p.Text)
	}

	fmt.Fprintf(&b, "\nLearner's answer: %s\n", input.UserAnswer)

	return b.String()
}
