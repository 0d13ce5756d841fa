// Package index is the vector index client: one stored vector per expert,
// upsert-by-id and k-nearest-neighbor queries over an FT index.
package index

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kailas-cloud/expertmatch/internal/db"
	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// store is the consumer interface for the expert vector index (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	Del(ctx context.Context, key string) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements the vector index contract over an FT-capable store.
// Metric is FLAT/L2: hit scores are negated Euclidean distances, so
// descending score order is nearest-first.
type Repo struct {
	store     store
	keyPrefix string
	vectorDim int
}

// New creates an expert vector index client.
func New(s store, keyPrefix string, vectorDim int) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, vectorDim: vectorDim}
}

// EnsureIndex creates the FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("check index %s: %w", r.indexName(), err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:        r.indexName(),
		StorageType: db.StorageHash,
		Prefixes:    []string{r.expertKeyPrefix()},
		Fields: []db.IndexField{
			{Name: "id", Type: db.IndexFieldNumeric},
			{
				Name:           "__vector",
				Alias:          "vector",
				Type:           db.IndexFieldVector,
				VectorAlgo:     db.VectorFlat,
				VectorDim:      r.vectorDim,
				VectorDistance: db.DistanceL2,
			},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil && err != db.ErrIndexExists {
		return fmt.Errorf("create index %s: %w", r.indexName(), err)
	}
	return nil
}

// Upsert stores the expert's vector, replacing any prior one wholesale.
func (r *Repo) Upsert(ctx context.Context, expertID int64, vector []float32) error {
	if len(vector) != r.vectorDim {
		return fmt.Errorf("%w: got %d, index expects %d",
			domain.ErrVectorDimMismatch, len(vector), r.vectorDim)
	}

	fields := map[string]string{
		"id":       strconv.FormatInt(expertID, 10),
		"__vector": db.EncodeVector(vector),
	}
	if err := r.store.HSet(ctx, r.expertKey(expertID), fields); err != nil {
		return fmt.Errorf("upsert expert %d: %w", expertID, err)
	}
	return nil
}

// Delete removes the expert's vector. Absent vectors are not an error.
func (r *Repo) Delete(ctx context.Context, expertID int64) error {
	if err := r.store.Del(ctx, r.expertKey(expertID)); err != nil {
		return fmt.Errorf("delete expert %d: %w", expertID, err)
	}
	return nil
}

// Query returns up to k expert hits ordered by descending similarity.
// Equal scores order by ascending expert id so results are deterministic.
// A failing backend surfaces as domain.ErrIndexUnavailable.
func (r *Repo) Query(ctx context.Context, vector []float32, k int) ([]domain.ExpertHit, error) {
	if len(vector) != r.vectorDim {
		return nil, fmt.Errorf("%w: got %d, index expects %d",
			domain.ErrVectorDimMismatch, len(vector), r.vectorDim)
	}

	res, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.indexName(),
		Vector:       vector,
		K:            k,
		ReturnFields: []string{"id", "__vector_score"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
	}

	hits := make([]domain.ExpertHit, 0, len(res.Entries))
	for _, entry := range res.Entries {
		id, ok := r.entryExpertID(entry)
		if !ok {
			continue
		}
		hits = append(hits, domain.ExpertHit{ExpertID: id, Score: -entry.Score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ExpertID < hits[j].ExpertID
	})

	return hits, nil
}

// entryExpertID reads the expert id from the returned fields, falling back
// to the key suffix.
func (r *Repo) entryExpertID(entry db.SearchEntry) (int64, bool) {
	raw, ok := entry.Fields["id"]
	if !ok {
		raw = strings.TrimPrefix(entry.Key, r.expertKeyPrefix())
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (r *Repo) indexName() string {
	return r.keyPrefix + "expert-idx"
}

func (r *Repo) expertKeyPrefix() string {
	return r.keyPrefix + "expert:"
}

func (r *Repo) expertKey(expertID int64) string {
	return r.expertKeyPrefix() + strconv.FormatInt(expertID, 10)
}
