// Package corpus holds the methodology knowledge base as retrievable
// chunks with embeddings and answers filtered nearest-neighbor queries.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Metadata carries the retrieval attributes of a source record. Every
// chunk produced from the record inherits it unchanged.
type Metadata struct {
	Difficulty int    `json:"difficulty"`
	Topic      string `json:"topic"`
	Source     string `json:"source"`
}

// RawRecord is one line of the JSONL corpus source: a methodology
// question/answer pair with metadata.
type RawRecord struct {
	Prompt   string   `json:"prompt"`
	Response string   `json:"response"`
	Metadata Metadata `json:"metadata"`
}

// Chunk is an immutable retrievable unit of corpus text. Chunks are
// created once per corpus build and never mutated; Order preserves the
// original corpus position for stable tie-breaking.
type Chunk struct {
	ID         string
	Text       string
	Topic      string
	Difficulty int
	Source     string
	Order      int
	Embedding  []float32
}

// LoadJSONL reads raw corpus records from r, one JSON object per line.
// Blank lines are skipped. A malformed line fails the whole load with
// its line number so corpus problems surface at build time, not during
// a lesson.
func LoadJSONL(r io.Reader) ([]RawRecord, error) {
	var records []RawRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var rec RawRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("line %d: parse record: %w", line, err)
		}
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return records, nil
}

// LoadFile reads raw corpus records from a JSONL file on disk.
func LoadFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()
	return LoadJSONL(f)
}

func validateRecord(rec RawRecord) error {
	if strings.TrimSpace(rec.Prompt) == "" && strings.TrimSpace(rec.Response) == "" {
		return fmt.Errorf("record has neither prompt nor response")
	}
	if strings.TrimSpace(rec.Metadata.Topic) == "" {
		return fmt.Errorf("record has no topic")
	}
	if rec.Metadata.Difficulty < 1 {
		return fmt.Errorf("record difficulty %d out of range", rec.Metadata.Difficulty)
	}
	return nil
}

// expandRecord turns one raw record into the document texts to index:
// the question alone, the answer alone, and the combined pair. Indexing
// all three lets queries match either side of the material.
func expandRecord(rec RawRecord) []string {
	prompt := strings.TrimSpace(rec.Prompt)
	response := strings.TrimSpace(rec.Response)

	var docs []string
	if prompt != "" {
		docs = append(docs, "Question: "+prompt)
	}
	if response != "" {
		docs = append(docs, "Answer: "+response)
	}
	if prompt != "" && response != "" {
		docs = append(docs, "Question: "+prompt+"\nAnswer: "+response)
	}
	return docs
}
