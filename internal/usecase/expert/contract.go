package expert

import (
	"context"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// Records is the relational store the expert service depends on.
type Records interface {
	CreateExpert(ctx context.Context, expert *domain.Expert) error
	GetExpert(ctx context.Context, id int64) (domain.Expert, error)
	DeleteExpert(ctx context.Context, id int64) error
	AddPublication(ctx context.Context, expertID int64, pub *domain.Publication) error
}

// Indexer schedules vector index maintenance for an expert. Both calls
// are fire-and-forget.
type Indexer interface {
	Enqueue(expertID int64)
	Remove(expertID int64)
}
