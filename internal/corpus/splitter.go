package corpus

import "strings"

// separators in preference order: paragraph break, line break, sentence
// end, word boundary. The splitter cuts at the latest occurrence of the
// most preferred separator inside the window.
var separators = []string{"\n\n", "\n", ". ", "! ", "? ", " "}

// Splitter cuts document text into overlapping chunks of bounded size,
// preferring natural boundaries over hard character cuts.
type Splitter struct {
	maxChars int
	overlap  int
}

// NewSplitter returns a Splitter with the given size and overlap.
func NewSplitter(maxChars, overlap int) *Splitter {
	return &Splitter{maxChars: maxChars, overlap: overlap}
}

// Split returns the chunks of text, each at most maxChars long, with
// consecutive chunks sharing up to overlap characters. Empty input
// yields no chunks.
func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= s.maxChars {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		remaining := text[start:]
		if len(remaining) <= s.maxChars {
			if piece := strings.TrimSpace(remaining); piece != "" {
				chunks = append(chunks, piece)
			}
			break
		}

		cut := findCut(remaining[:s.maxChars])
		piece := strings.TrimSpace(remaining[:cut])
		if piece != "" {
			chunks = append(chunks, piece)
		}

		next := start + cut - s.overlap
		if next <= start {
			next = start + cut
		}
		start = next
	}
	return chunks
}

// findCut picks the cut position within a full-size window: the end of
// the last occurrence of the most preferred separator in the second
// half of the window, falling back to a hard cut at the window edge.
// The second-half restriction keeps chunks from degenerating when a
// paragraph break sits near the window start.
func findCut(window string) int {
	min := len(window) / 2
	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx >= 0 && idx+len(sep) > min {
			return idx + len(sep)
		}
	}
	return len(window)
}
