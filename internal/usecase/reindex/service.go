// Package reindex keeps the vector index in step with the record store.
// Indexing is best-effort: a failed upsert never fails the record write
// that triggered it. The index is eventually consistent with the store.
package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/expertmatch/internal/metrics"
)

const (
	defaultWorkers     = 4
	defaultMaxAttempts = 3
	defaultTimeout     = 10 * time.Second
	initialBackoff     = 100 * time.Millisecond
)

// Reindexer recomputes and re-upserts expert vectors after text-bearing
// fields or the publication set change.
type Reindexer struct {
	records     Records
	index       Index
	embed       Embedder
	pool        *ants.Pool
	maxAttempts int
	timeout     time.Duration
	logger      *zap.Logger
}

// Option configures a Reindexer.
type Option func(*Reindexer)

// WithMaxAttempts bounds upsert retries per job.
func WithMaxAttempts(n int) Option {
	return func(r *Reindexer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithTimeout bounds each job's total run time.
func WithTimeout(d time.Duration) Option {
	return func(r *Reindexer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates a reindexer with a worker pool of the given size.
func New(records Records, index Index, embed Embedder, workers int, logger *zap.Logger, opts ...Option) (*Reindexer, error) {
	if workers < 1 {
		workers = defaultWorkers
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	r := &Reindexer{
		records:     records,
		index:       index,
		embed:       embed,
		pool:        pool,
		maxAttempts: defaultMaxAttempts,
		timeout:     defaultTimeout,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close releases the worker pool.
func (r *Reindexer) Close() {
	r.pool.Release()
}

// Enqueue schedules a reindex for the expert. Fire-and-forget: scheduling
// and indexing failures are logged, never returned, so the triggering
// record write always stands.
func (r *Reindexer) Enqueue(expertID int64) {
	err := r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.Reindex(ctx, expertID); err != nil {
			metrics.ReindexTotal.WithLabelValues("error").Inc()
			r.logger.Warn("reindex failed",
				zap.Int64("expert_id", expertID),
				zap.Error(err),
			)
			return
		}
		metrics.ReindexTotal.WithLabelValues("success").Inc()
	})
	if err != nil {
		metrics.ReindexTotal.WithLabelValues("rejected").Inc()
		r.logger.Warn("reindex submit failed",
			zap.Int64("expert_id", expertID),
			zap.Error(err),
		)
	}
}

// Remove schedules removal of the expert's vector, e.g. after delete.
// Best-effort like Enqueue.
func (r *Reindexer) Remove(expertID int64) {
	err := r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.index.Delete(ctx, expertID); err != nil {
			r.logger.Warn("index delete failed",
				zap.Int64("expert_id", expertID),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		r.logger.Warn("index delete submit failed",
			zap.Int64("expert_id", expertID),
			zap.Error(err),
		)
	}
}

// Reindex synchronously fetches, normalizes, embeds, and upserts one
// expert. Upsert is idempotent, so transient index failures retry with
// doubling backoff up to the attempt bound.
func (r *Reindexer) Reindex(ctx context.Context, expertID int64) error {
	expert, err := r.records.GetExpert(ctx, expertID)
	if err != nil {
		return fmt.Errorf("get expert: %w", err)
	}

	emb, err := r.embed.Embed(ctx, expert.MatchText())
	if err != nil {
		return fmt.Errorf("embed expert text: %w", err)
	}

	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		err = r.index.Upsert(ctx, expertID, emb.Embedding)
		if err == nil {
			return nil
		}
		if attempt >= r.maxAttempts {
			return fmt.Errorf("upsert after %d attempts: %w", attempt, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("upsert canceled: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
