// Package employee contains employee-related use cases.
package employee

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// CreateEmployeeInput represents the input for employee creation.
type CreateEmployeeInput struct {
	Name     string
	Salary   decimal.Decimal
	Position string
	Group    string
}

// CreateEmployeeOutput represents the output of employee creation.
type CreateEmployeeOutput struct {
	Employee *entity.Employee
}

// CreateEmployeeUseCase handles employee creation logic.
type CreateEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewCreateEmployeeUseCase creates a new CreateEmployeeUseCase instance.
func NewCreateEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute performs the employee creation.
func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, input CreateEmployeeInput) (*CreateEmployeeOutput, error) {
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

	employee := entity.NewEmployee(input.Name, input.Salary, input.Position, input.Group)

	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return &CreateEmployeeOutput{
		Employee: employee,
	}, nil
}
