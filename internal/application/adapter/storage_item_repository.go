package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// StorageItemRepository defines the interface for catalog persistence operations.
type StorageItemRepository interface {
	// Create creates a new catalog entry in the database.
	Create(ctx context.Context, item *entity.StorageItem) error

	// FindByID retrieves a catalog entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StorageItem, error)

	// FindAll retrieves every catalog entry.
	FindAll(ctx context.Context) ([]*entity.StorageItem, error)

	// FindByCategoryName retrieves catalog entries for a category name.
	FindByCategoryName(ctx context.Context, categoryName string) ([]*entity.StorageItem, error)

	// Update updates an existing catalog entry in the database.
	Update(ctx context.Context, item *entity.StorageItem) error

	// Delete removes a catalog entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
