// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/integration/persistence/model"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// projectStore implements the adapter.ProjectStore interface against the
// authoritative backend database.
type projectStore struct {
	db *gorm.DB
}

// NewProjectStore creates a new project store instance.
func NewProjectStore(db *gorm.DB) adapter.ProjectStore {
	return &projectStore{
		db: db,
	}
}

// List retrieves every project record, oldest first.
func (s *projectStore) List(ctx context.Context) ([]*entity.Project, error) {
	var records []model.ProjectRecord
	result := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(records))
	for i := range records {
		projects[i] = records[i].ToEntity()
	}
	return projects, nil
}

// Insert creates a new project record.
func (s *projectStore) Insert(ctx context.Context, project *entity.Project) error {
	record := model.RecordFromEntity(project)
	result := s.db.WithContext(ctx).Create(record)
	return result.Error
}

// Upsert creates or replaces the project record, idempotent on the ID.
func (s *projectStore) Upsert(ctx context.Context, project *entity.Project) error {
	record := model.RecordFromEntity(project)
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(record)
	return result.Error
}

// Delete removes a project record by ID.
func (s *projectStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.ProjectRecord{}, "id = ?", id.String())
	return result.Error
}
