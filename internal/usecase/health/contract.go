package health

import "context"

// RecordsPinger checks relational store availability.
type RecordsPinger interface {
	Ping(ctx context.Context) error
}

// IndexPinger checks vector index availability.
type IndexPinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
