// Package record is the authoritative relational store for experts,
// publications, and projects.
package record

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// Open connects to the record database by driver name (sqlite, postgres).
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	case "postgres":
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown records driver %q", driver)
	}
}

// Repo implements the record store contracts over gorm.
type Repo struct {
	db *gorm.DB
}

// New creates a record repository and migrates the schema.
func New(db *gorm.DB) (*Repo, error) {
	if err := db.AutoMigrate(&expertModel{}, &publicationModel{}, &projectModel{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Repo{db: db}, nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// CreateExpert persists a new expert (with any initial publications) and
// fills in the generated ids. Duplicate emails map to ErrAlreadyExists.
func (r *Repo) CreateExpert(ctx context.Context, e *domain.Expert) error {
	m := expertToModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("expert email %q: %w", e.Email, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("create expert: %w", err)
	}
	*e = expertFromModel(&m)
	return nil
}

// GetExpert returns an expert with publications in insertion order.
func (r *Repo) GetExpert(ctx context.Context, id int64) (domain.Expert, error) {
	var m expertModel
	err := r.db.WithContext(ctx).
		Preload("Publications", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Expert{}, domain.ErrExpertNotFound
		}
		return domain.Expert{}, fmt.Errorf("get expert %d: %w", id, err)
	}
	return expertFromModel(&m), nil
}

// GetExpertsByIDs batch-fetches experts. Return order is unspecified;
// callers needing rank order must reorder. Missing ids are silently absent.
func (r *Repo) GetExpertsByIDs(ctx context.Context, ids []int64) ([]domain.Expert, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []expertModel
	err := r.db.WithContext(ctx).
		Preload("Publications", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("id IN ?", ids).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("get experts by ids: %w", err)
	}

	experts := make([]domain.Expert, len(models))
	for i := range models {
		experts[i] = expertFromModel(&models[i])
	}
	return experts, nil
}

// DeleteExpert removes an expert and all its publications in one
// transaction (the cascade the schema promises, enforced explicitly so
// sqlite behaves the same as postgres).
func (r *Repo) DeleteExpert(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&expertModel{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete expert %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrExpertNotFound
		}
		if err := tx.Where("expert_id = ?", id).Delete(&publicationModel{}).Error; err != nil {
			return fmt.Errorf("delete publications for expert %d: %w", id, err)
		}
		return nil
	})
}

// AddPublication appends a publication to an expert's ordered collection.
func (r *Repo) AddPublication(ctx context.Context, expertID int64, p *domain.Publication) error {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&expertModel{}).
		Where("id = ?", expertID).Count(&exists).Error; err != nil {
		return fmt.Errorf("check expert %d: %w", expertID, err)
	}
	if exists == 0 {
		return domain.ErrExpertNotFound
	}

	m := publicationToModel(expertID, p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("add publication: %w", err)
	}
	p.ID = m.ID
	return nil
}

// CreateProject persists a new project and fills in the generated id.
func (r *Repo) CreateProject(ctx context.Context, p *domain.Project) error {
	m := projectToModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	*p = projectFromModel(&m)
	return nil
}

// GetProject returns a project by id.
func (r *Repo) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	var m projectModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	return projectFromModel(&m), nil
}
