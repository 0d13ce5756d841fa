// Package match ranks experts against a project by vector similarity.
package match

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// DefaultTopK is the result count when the config does not set one.
const DefaultTopK = 10

// Service orchestrates the matching pipeline: normalize and embed the
// project text, query the index for the top-K experts, fetch the full
// records, and return them in rank order.
type Service struct {
	records Records
	index   Index
	embed   Embedder
	topK    int
	logger  *zap.Logger
}

// New creates a match service.
func New(records Records, index Index, embed Embedder, logger *zap.Logger) *Service {
	return &Service{records: records, index: index, embed: embed, topK: DefaultTopK, logger: logger}
}

// WithTopK overrides the configured result count.
func (s *Service) WithTopK(k int) *Service {
	if k > 0 {
		s.topK = k
	}
	return s
}

// Match ranks experts for the given project.
//
// A missing project surfaces as domain.ErrProjectNotFound and an index
// failure as domain.ErrIndexUnavailable; the latter is never downgraded to
// an unranked expert list. Zero hits is a valid empty result. Ids the index
// returns but the record store no longer has are logged and dropped.
func (s *Service) Match(ctx context.Context, projectID int64) (domain.Match, error) {
	project, err := s.records.GetProject(ctx, projectID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("get project: %w", err)
	}

	emb, err := s.embed.Embed(ctx, project.MatchText())
	if err != nil {
		return domain.Match{}, fmt.Errorf("embed project text: %w", err)
	}

	hits, err := s.index.Query(ctx, emb.Embedding, s.topK)
	if err != nil {
		return domain.Match{}, fmt.Errorf("query index: %w", err)
	}

	result := domain.Match{Project: project, Experts: []domain.Expert{}}
	if len(hits) == 0 {
		return result, nil
	}

	ids := make([]int64, len(hits))
	for i, h := range hits {
		ids[i] = h.ExpertID
	}

	experts, err := s.records.GetExpertsByIDs(ctx, ids)
	if err != nil {
		return domain.Match{}, fmt.Errorf("fetch experts: %w", err)
	}

	byID := make(map[int64]domain.Expert, len(experts))
	for _, e := range experts {
		byID[e.ID] = e
	}

	// Batch-fetch order is unspecified; the index rank is authoritative.
	for _, h := range hits {
		e, ok := byID[h.ExpertID]
		if !ok {
			s.logger.Warn("index hit missing from record store",
				zap.Int64("expert_id", h.ExpertID),
				zap.Int64("project_id", projectID),
			)
			continue
		}
		result.Experts = append(result.Experts, e)
	}

	return result, nil
}
