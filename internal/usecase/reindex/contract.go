package reindex

import (
	"context"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// Records reads experts (with publications) for reindexing.
type Records interface {
	GetExpert(ctx context.Context, id int64) (domain.Expert, error)
}

// Index stores one vector per expert.
type Index interface {
	Upsert(ctx context.Context, expertID int64, vector []float32) error
	Delete(ctx context.Context, expertID int64) error
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
