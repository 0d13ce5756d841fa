package domain

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// DefaultDimensions is the embedding dimensionality used when the config
// does not set one. Every vector in the index has the same dimensionality.
const DefaultDimensions = 256

// Embedder is the shared text vectorization contract between layers. Any
// conforming implementation (local hash embedder, external provider) is
// interchangeable; consumers depend only on this contract.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker verifies embedding provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// HashEmbedder is a deterministic local embedder using signed feature
// hashing: each lowercased whitespace token is hashed with FNV-1a into one
// of D buckets with a hash-derived sign, then the vector is L2-normalized.
// It is total (empty text maps to the zero vector) and bit-identical across
// calls and process restarts.
type HashEmbedder struct {
	dimensions int
}

// NewHashEmbedder creates a hash embedder with the given dimensionality.
func NewHashEmbedder(dimensions int) *HashEmbedder {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &HashEmbedder{dimensions: dimensions}
}

// Dimensions returns the fixed output dimensionality.
func (e *HashEmbedder) Dimensions() int { return e.dimensions }

// Embed implements Embedder. Never fails.
func (e *HashEmbedder) Embed(_ context.Context, text string) (EmbeddingResult, error) {
	vec := make([]float32, e.dimensions)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(token))
		sum := h.Sum64()

		bucket := int(sum % uint64(e.dimensions))
		if sum&(1<<63) != 0 {
			vec[bucket]--
		} else {
			vec[bucket]++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}

	return EmbeddingResult{Embedding: vec}, nil
}
