package project

import (
	"context"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// Records is the relational store the project service depends on.
type Records interface {
	CreateProject(ctx context.Context, project *domain.Project) error
	GetProject(ctx context.Context, id int64) (domain.Project, error)
}
