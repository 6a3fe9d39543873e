package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// UpdateEmployeeInput represents the input for an employee update.
type UpdateEmployeeInput struct {
	ID       uuid.UUID
	Name     string
	Salary   decimal.Decimal
	Position string
	Group    string
	IsActive bool
}

// UpdateEmployeeOutput represents the output of an employee update.
type UpdateEmployeeOutput struct {
	Employee *entity.Employee
}

// UpdateEmployeeUseCase handles employee update logic.
type UpdateEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewUpdateEmployeeUseCase creates a new UpdateEmployeeUseCase instance.
func NewUpdateEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute performs the employee update. A salary change re-derives the
// hourly and daily rates; overtime already charged to projects keeps its
// snapshotted cost.
func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, input UpdateEmployeeInput) (*UpdateEmployeeOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewEmployeeError(
			domainerror.ErrCodeMissingEmployeeFields,
			"employee name is required",
			domainerror.ErrMissingEmployeeFields,
		)
	}
	if !input.Salary.IsPositive() {
		return nil, domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidSalary,
			"salary must be greater than zero",
			domainerror.ErrInvalidSalary,
		)
	}

	employee, err := uc.employeeRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	employee.Name = input.Name
	employee.Position = input.Position
	employee.Group = input.Group
	employee.IsActive = input.IsActive
	if !employee.Salary.Equal(input.Salary) {
		employee.UpdateSalary(input.Salary)
	} else {
		employee.UpdatedAt = time.Now().UTC()
	}

	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return &UpdateEmployeeOutput{
		Employee: employee,
	}, nil
}
