package llm

import (
	"context"
	"math"
	"testing"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	e := NewMockEmbedder(16)

	a, err := e.Embed(context.Background(), []string{"recovery time objective"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.Embed(context.Background(), []string{"recovery time objective"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a[0] {
		if a[0][i] != b[0][i] {
			t.Fatalf("embedding not deterministic at dim %d: %f != %f", i, a[0][i], b[0][i])
		}
	}
}

func TestMockEmbedder_DistinctTextsDiffer(t *testing.T) {
	e := NewMockEmbedder(16)

	vecs, err := e.Embed(context.Background(), []string{"business impact analysis", "crisis communication"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	same := true
	for i := range vecs[0] {
		if vecs[0][i] != vecs[1][i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different embeddings for different texts")
	}
}

func TestMockEmbedder_UnitLength(t *testing.T) {
	e := NewMockEmbedder(32)

	vecs, err := e.Embed(context.Background(), []string{"disaster recovery"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var norm float64
	for _, x := range vecs[0] {
		norm += float64(x) * float64(x)
	}
	if math.Abs(math.Sqrt(norm)-1.0) > 1e-5 {
		t.Fatalf("expected unit-length vector, got norm %f", math.Sqrt(norm))
	}
}

func TestMockEmbedder_EmptyInput(t *testing.T) {
	e := NewMockEmbedder(8)

	vecs, err := e.Embed(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vecs) != 0 {
		t.Fatalf("expected no vectors, got %d", len(vecs))
	}
}
