package corpus

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	s := NewSplitter(1000, 200)
	chunks := s.Split("A short passage about recovery objectives.")
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
}

func TestSplitEmptyText(t *testing.T) {
	s := NewSplitter(1000, 200)
	if chunks := s.Split("   \n  "); chunks != nil {
		t.Fatalf("chunks = %v, want nil", chunks)
	}
}

func TestSplitRespectsMaxSize(t *testing.T) {
	s := NewSplitter(100, 20)
	text := strings.Repeat("The continuity plan names an owner for every critical process. ", 30)

	chunks := s.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want several", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d length = %d, exceeds max 100", i, len(c))
		}
		if c == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestSplitPrefersParagraphBoundary(t *testing.T) {
	first := strings.Repeat("a", 60)
	second := strings.Repeat("b", 60)
	s := NewSplitter(100, 0)

	chunks := s.Split(first + "\n\n" + second)
	if len(chunks) != 2 {
		t.Fatalf("chunks = %d, want 2", len(chunks))
	}
	if chunks[0] != first {
		t.Errorf("chunk 0 = %q, want the first paragraph", chunks[0])
	}
	if chunks[1] != second {
		t.Errorf("chunk 1 = %q, want the second paragraph", chunks[1])
	}
}

func TestSplitOverlapCarriesContext(t *testing.T) {
	s := NewSplitter(100, 30)
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString(fmt.Sprintf("w%03d ", i)) // distinct 5-char tokens
	}

	chunks := s.Split(b.String())
	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want several", len(chunks))
	}
	// Each chunk after the first starts inside the previous chunk's tail.
	for i := 1; i < len(chunks); i++ {
		head := chunks[i][:5]
		if !strings.Contains(chunks[i-1], head) {
			t.Errorf("chunk %d head %q not found in previous chunk", i, head)
		}
	}
}

func TestSplitAlwaysTerminates(t *testing.T) {
	// Text with no separators at all still splits via hard cuts.
	s := NewSplitter(50, 10)
	text := strings.Repeat("x", 500)

	chunks := s.Split(text)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for i, c := range chunks {
		if len(c) > 50 {
			t.Errorf("chunk %d length = %d, exceeds max 50", i, len(c))
		}
	}
}
