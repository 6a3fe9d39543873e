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

// employeeRepository implements the adapter.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *gorm.DB) adapter.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// Create creates a new employee in the database.
func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeModel := model.EmployeeFromEntity(employee)
	result := r.db.WithContext(ctx).Create(employeeModel)
	return result.Error
}

// FindByID retrieves an employee by its ID.
func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeModel model.EmployeeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&employeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmployeeNotFound
		}
		return nil, result.Error
	}
	return employeeModel.ToEntity(), nil
}

// FindAll retrieves every employee, active ones first.
func (r *employeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	var employeeModels []model.EmployeeModel
	result := r.db.WithContext(ctx).
		Order("is_active DESC, name ASC").
		Find(&employeeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	employees := make([]*entity.Employee, len(employeeModels))
	for i, em := range employeeModels {
		employees[i] = em.ToEntity()
	}
	return employees, nil
}

// Update updates an existing employee in the database.
func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	employeeModel := model.EmployeeFromEntity(employee)
	result := r.db.WithContext(ctx).Save(employeeModel)
	return result.Error
}

// Delete removes an employee from the database.
func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EmployeeModel{}, "id = ?", id)
	return result.Error
}
