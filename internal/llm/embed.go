package llm

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"sync"
)

// Embedder is the pluggable embedding capability. The corpus index uses
// it at build time, the retriever at query time.
type Embedder interface {
	// Embed returns one dense vector per input text, in input order.
	// All vectors from one embedder have the same dimension.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the embedding model identifier.
	ModelID() string
}

// MockEmbedder is a deterministic Embedder for tests and offline corpus
// experiments. Vectors are derived from a hash of the input text, so the
// same text always embeds to the same unit-length vector and distinct
// texts almost always differ.
type MockEmbedder struct {
	Dim int

	mu    sync.Mutex
	Calls []string
}

// NewMockEmbedder creates a MockEmbedder producing vectors of dim
// dimensions (default 32 if dim <= 0).
func NewMockEmbedder(dim int) *MockEmbedder {
	if dim <= 0 {
		dim = 32
	}
	return &MockEmbedder{Dim: dim}
}

func (m *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, texts...)
	m.mu.Unlock()

	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = hashVector(t, m.Dim)
	}
	return out, nil
}

func (m *MockEmbedder) ModelID() string { return "mock-embedder" }

// hashVector expands a SHA-256 digest into a unit-length vector.
func hashVector(text string, dim int) []float32 {
	v := make([]float32, dim)
	seed := sha256.Sum256([]byte(text))

	var norm float64
	buf := seed[:]
	for i := range v {
		if len(buf) < 4 {
			next := sha256.Sum256(buf)
			buf = next[:]
		}
		bits := binary.BigEndian.Uint32(buf[:4])
		buf = buf[4:]
		// Map to [-1, 1).
		v[i] = float32(int32(bits)) / float32(math.MaxInt32)
		norm += float64(v[i]) * float64(v[i])
	}

	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range v {
			v[i] = float32(float64(v[i]) / norm)
		}
	}
	return v
}
