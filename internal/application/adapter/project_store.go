// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// ProjectStore is the authoritative remote store for the project collection.
// Implementations map entities to the wire shape (categories JSON-encoded as
// a string column, dates as ISO strings or null).
type ProjectStore interface {
	// List retrieves every project record.
	List(ctx context.Context) ([]*entity.Project, error)

	// Insert creates a new project record.
	Insert(ctx context.Context, project *entity.Project) error

	// Upsert creates or replaces the project record. It must be idempotent
	// on the project ID.
	Upsert(ctx context.Context, project *entity.Project) error

	// Delete removes a project record by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
