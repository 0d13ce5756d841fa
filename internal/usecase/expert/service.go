// Package expert implements expert profile management. Writes go to the
// record store first; the vector index is refreshed asynchronously so a
// slow or unavailable index never blocks profile changes.
package expert

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// Service manages expert profiles and their publications.
type Service struct {
	records Records
	indexer Indexer
	logger  *zap.Logger
}

// New creates an expert service.
func New(records Records, indexer Indexer, logger *zap.Logger) *Service {
	return &Service{
		records: records,
		indexer: indexer,
		logger:  logger,
	}
}

// Create validates and stores a new expert, then schedules indexing.
func (s *Service) Create(ctx context.Context, expert *domain.Expert) (domain.Expert, error) {
	if err := validateExpert(expert); err != nil {
		return domain.Expert{}, err
	}

	if err := s.records.CreateExpert(ctx, expert); err != nil {
		return domain.Expert{}, fmt.Errorf("create expert: %w", err)
	}

	s.indexer.Enqueue(expert.ID)
	s.logger.Info("expert created",
		zap.Int64("expert_id", expert.ID),
		zap.String("email", expert.Email),
	)
	return *expert, nil
}

// Get returns one expert with publications.
func (s *Service) Get(ctx context.Context, id int64) (domain.Expert, error) {
	expert, err := s.records.GetExpert(ctx, id)
	if err != nil {
		return domain.Expert{}, fmt.Errorf("get expert: %w", err)
	}
	return expert, nil
}

// Delete removes the expert record and schedules index cleanup.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.records.DeleteExpert(ctx, id); err != nil {
		return fmt.Errorf("delete expert: %w", err)
	}

	s.indexer.Remove(id)
	s.logger.Info("expert deleted", zap.Int64("expert_id", id))
	return nil
}

// AddPublication attaches a publication to an expert and schedules a
// reindex, since publication titles feed the expert's match text.
func (s *Service) AddPublication(ctx context.Context, expertID int64, pub *domain.Publication) (domain.Publication, error) {
	if strings.TrimSpace(pub.Title) == "" {
		return domain.Publication{}, fmt.Errorf("%w: publication title is required", domain.ErrInvalidArgument)
	}

	if err := s.records.AddPublication(ctx, expertID, pub); err != nil {
		return domain.Publication{}, fmt.Errorf("add publication: %w", err)
	}

	s.indexer.Enqueue(expertID)
	return *pub, nil
}

func validateExpert(expert *domain.Expert) error {
	if strings.TrimSpace(expert.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if !validEduEmail(expert.Email) {
		return fmt.Errorf("%w: email must be a .edu address", domain.ErrInvalidArgument)
	}
	return nil
}

// validEduEmail checks the academic-affiliation rule: experts register
// with an institutional .edu address.
func validEduEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.HasSuffix(strings.ToLower(email), ".edu")
}
