package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// VisitRepository defines the interface for customer-visit persistence operations.
type VisitRepository interface {
	// Create creates a new visit in the database.
	Create(ctx context.Context, visit *entity.Visit) error

	// FindByID retrieves a visit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// FindAll retrieves every visit, most recent first.
	FindAll(ctx context.Context) ([]*entity.Visit, error)

	// Update updates an existing visit in the database.
	Update(ctx context.Context, visit *entity.Visit) error

	// Delete removes a visit from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
