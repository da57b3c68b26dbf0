package corpus

import (
	"strings"
	"testing"
)

const sampleJSONL = `{"prompt":"What does RTO stand for?","response":"Recovery Time Objective: the maximum tolerable downtime for a process.","metadata":{"difficulty":1,"topic":"rto-rpo","source":"methodology-guide"}}
{"prompt":"Name the phases of a business impact analysis.","response":"Scoping, data gathering, impact assessment, and reporting.","metadata":{"difficulty":3,"topic":"impact-analysis","source":"methodology-guide"}}

{"prompt":"When is a crisis declared?","response":"When an incident exceeds predefined impact thresholds.","metadata":{"difficulty":2,"topic":"crisis-management","source":"playbook"}}
`

func TestLoadJSONL(t *testing.T) {
	records, err := LoadJSONL(strings.NewReader(sampleJSONL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3 (blank line skipped)", len(records))
	}
	if records[0].Metadata.Topic != "rto-rpo" {
		t.Errorf("topic = %q, want rto-rpo", records[0].Metadata.Topic)
	}
	if records[1].Metadata.Difficulty != 3 {
		t.Errorf("difficulty = %d, want 3", records[1].Metadata.Difficulty)
	}
}

func TestLoadJSONLMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{"prompt": not json}`},
		{"missing topic", `{"prompt":"q","response":"a","metadata":{"difficulty":1,"source":"s"}}`},
		{"zero difficulty", `{"prompt":"q","response":"a","metadata":{"difficulty":0,"topic":"t","source":"s"}}`},
		{"empty record", `{"prompt":"","response":"","metadata":{"difficulty":1,"topic":"t","source":"s"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSONL(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error %q should name the offending line", err)
			}
		})
	}
}

func TestExpandRecord(t *testing.T) {
	rec := RawRecord{
		Prompt:   "What does RPO stand for?",
		Response: "Recovery Point Objective.",
		Metadata: Metadata{Difficulty: 1, Topic: "rto-rpo"},
	}

	docs := expandRecord(rec)
	if len(docs) != 3 {
		t.Fatalf("docs = %d, want 3 (question, answer, combined)", len(docs))
	}
	if !strings.HasPrefix(docs[0], "Question: ") {
		t.Errorf("doc[0] = %q, want Question prefix", docs[0])
	}
	if !strings.HasPrefix(docs[1], "Answer: ") {
		t.Errorf("doc[1] = %q, want Answer prefix", docs[1])
	}
	if !strings.Contains(docs[2], "Question: ") || !strings.Contains(docs[2], "Answer: ") {
		t.Errorf("doc[2] = %q, want combined form", docs[2])
	}
}

func TestExpandRecordPromptOnly(t *testing.T) {
	rec := RawRecord{
		Prompt:   "Define maximum tolerable period of disruption.",
		Metadata: Metadata{Difficulty: 2, Topic: "impact-analysis"},
	}

	docs := expandRecord(rec)
	if len(docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(docs))
	}
}
