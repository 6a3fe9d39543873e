package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee persistence operations.
type EmployeeRepository interface {
	// Create creates a new employee in the database.
	Create(ctx context.Context, employee *entity.Employee) error

	// FindByID retrieves an employee by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindAll retrieves every employee, active ones first.
	FindAll(ctx context.Context) ([]*entity.Employee, error)

	// Update updates an existing employee in the database.
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete removes an employee from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
