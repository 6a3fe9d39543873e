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

// storageItemRepository implements the adapter.StorageItemRepository interface.
type storageItemRepository struct {
	db *gorm.DB
}

// NewStorageItemRepository creates a new storage item repository instance.
func NewStorageItemRepository(db *gorm.DB) adapter.StorageItemRepository {
	return &storageItemRepository{
		db: db,
	}
}

// Create creates a new catalog entry in the database.
func (r *storageItemRepository) Create(ctx context.Context, item *entity.StorageItem) error {
	itemModel := model.StorageItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	return result.Error
}

// FindByID retrieves a catalog entry by its ID.
func (r *storageItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StorageItem, error) {
	var itemModel model.StorageItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStorageItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves every catalog entry ordered by category and name.
func (r *storageItemRepository) FindAll(ctx context.Context) ([]*entity.StorageItem, error) {
	var itemModels []model.StorageItemModel
	result := r.db.WithContext(ctx).
		Order("category_name ASC, name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.StorageItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// FindByCategoryName retrieves catalog entries for a category name.
func (r *storageItemRepository) FindByCategoryName(ctx context.Context, categoryName string) ([]*entity.StorageItem, error) {
	var itemModels []model.StorageItemModel
	result := r.db.WithContext(ctx).
		Where("category_name = ?", categoryName).
		Order("name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.StorageItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Update updates an existing catalog entry in the database.
func (r *storageItemRepository) Update(ctx context.Context, item *entity.StorageItem) error {
	itemModel := model.StorageItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	return result.Error
}

// Delete removes a catalog entry from the database.
func (r *storageItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.StorageItemModel{}, "id = ?", id)
	return result.Error
}
