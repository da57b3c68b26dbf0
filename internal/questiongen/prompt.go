package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a business-continuity risk methodology trainer creating assessment questions for bank employees.

Rules:
- Generate a single question about the given topic, answerable entirely from the supplied passages. Do not use knowledge from outside the passages.
- The reference answer must be supported by the passages and complete enough to grade a free-text response against.
- Cite the passages you used in supporting_chunk_ids. Cite only IDs that appear in the passage list. Cite at least one.
- Match the requested difficulty: 1 asks for a single stated fact, 3 asks the learner to connect two or three facts, 5 poses a multi-step scenario requiring judgment across the material.
- Use the terminology of the passages (RTO, RPO, impact analysis, crisis thresholds) exactly as written.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %d of 5\n", input.Difficulty)

	b.WriteString("\nPassages:\n")
	for _, p := range input.Passages {
		fmt.Fprintf(&b, "[%s] %s\n", p.ID, p.Text)
	}

	b.WriteString("\nAlready asked in this lesson:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, keeping only the
// most recent N.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
