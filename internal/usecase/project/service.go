// Package project implements project intake and lookup.
package project

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// Service manages project records.
type Service struct {
	records Records
	logger  *zap.Logger
}

// New creates a project service.
func New(records Records, logger *zap.Logger) *Service {
	return &Service{records: records, logger: logger}
}

// Create validates and stores a new project.
func (s *Service) Create(ctx context.Context, project *domain.Project) (domain.Project, error) {
	if strings.TrimSpace(project.OrganizationName) == "" {
		return domain.Project{}, fmt.Errorf("%w: organization name is required", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(project.Description) == "" {
		return domain.Project{}, fmt.Errorf("%w: description is required", domain.ErrInvalidArgument)
	}

	if err := s.records.CreateProject(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info("project created",
		zap.Int64("project_id", project.ID),
		zap.String("organization", project.OrganizationName),
	)
	return *project, nil
}

// Get returns one project.
func (s *Service) Get(ctx context.Context, id int64) (domain.Project, error) {
	project, err := s.records.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}
