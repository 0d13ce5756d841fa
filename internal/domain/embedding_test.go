package domain

import (
	"context"
	"math"
	"testing"
)

func TestHashEmbedder_Deterministic(t *testing.T) {
	e := NewHashEmbedder(64)

	first, err := e.Embed(context.Background(), "distributed systems researcher")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := e.Embed(context.Background(), "distributed systems researcher")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for j := range first.Embedding {
			if first.Embedding[j] != again.Embedding[j] {
				t.Fatalf("vectors differ at [%d]: %v vs %v", j, first.Embedding[j], again.Embedding[j])
			}
		}
	}
}

func TestHashEmbedder_FixedDimensions(t *testing.T) {
	e := NewHashEmbedder(128)

	for _, text := range []string{"", "one", "a much longer input with many tokens"} {
		res, err := e.Embed(context.Background(), text)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", text, err)
		}
		if len(res.Embedding) != 128 {
			t.Errorf("len(embedding) = %d for %q, want 128", len(res.Embedding), text)
		}
	}
}

func TestHashEmbedder_EmptyTextIsZeroVector(t *testing.T) {
	e := NewHashEmbedder(32)

	res, err := e.Embed(context.Background(), "")
	if err != nil {
		t.Fatalf("empty text must not fail: %v", err)
	}
	for i, v := range res.Embedding {
		if v != 0 {
			t.Errorf("embedding[%d] = %v, want 0", i, v)
		}
	}
}

func TestHashEmbedder_Normalized(t *testing.T) {
	e := NewHashEmbedder(64)

	res, err := e.Embed(context.Background(), "vector search engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var norm float64
	for _, v := range res.Embedding {
		norm += float64(v) * float64(v)
	}
	if math.Abs(norm-1) > 1e-5 {
		t.Errorf("squared norm = %v, want 1", norm)
	}
}

func TestHashEmbedder_DifferentTextsDiffer(t *testing.T) {
	e := NewHashEmbedder(64)

	a, _ := e.Embed(context.Background(), "machine learning")
	b, _ := e.Embed(context.Background(), "marine biology")

	same := true
	for i := range a.Embedding {
		if a.Embedding[i] != b.Embedding[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct texts produced identical vectors")
	}
}

func TestHashEmbedder_DefaultDimensions(t *testing.T) {
	e := NewHashEmbedder(0)
	if e.Dimensions() != DefaultDimensions {
		t.Errorf("Dimensions() = %d, want %d", e.Dimensions(), DefaultDimensions)
	}
}
