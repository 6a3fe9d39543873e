package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/internal/integration/persistence/model"
)

// visitRepository implements the adapter.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository instance.
func NewVisitRepository(db *gorm.DB) adapter.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Create creates a new visit in the database.
func (r *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitModel := model.VisitFromEntity(visit)
	result := r.db.WithContext(ctx).Create(visitModel)
	return result.Error
}

// FindByID retrieves a visit by its ID.
func (r *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitModel model.VisitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&visitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVisitNotFound
		}
		return nil, result.Error
	}
	return visitModel.ToEntity(), nil
}

// FindAll retrieves every visit, most recent first.
func (r *visitRepository) FindAll(ctx context.Context) ([]*entity.Visit, error) {
	var visitModels []model.VisitModel
	result := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&visitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	visits := make([]*entity.Visit, len(visitModels))
	for i, vm := range visitModels {
		visits[i] = vm.ToEntity()
	}
	return visits, nil
}

// Update updates an existing visit in the database.
func (r *visitRepository) Update(ctx context.Context, visit *entity.Visit) error {
	visitModel := model.VisitFromEntity(visit)
	result := r.db.WithContext(ctx).Save(visitModel)
	return result.Error
}

// Delete removes a visit from the database.
func (r *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.VisitModel{}, "id = ?", id)
	return result.Error
}
