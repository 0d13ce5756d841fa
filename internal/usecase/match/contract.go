package match

import (
	"context"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// Records reads authoritative project and expert records.
type Records interface {
	GetProject(ctx context.Context, id int64) (domain.Project, error)
	GetExpertsByIDs(ctx context.Context, ids []int64) ([]domain.Expert, error)
}

// Index answers k-nearest-neighbor queries over stored expert vectors.
type Index interface {
	Query(ctx context.Context, vector []float32, k int) ([]domain.ExpertHit, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
