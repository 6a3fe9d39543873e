package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
)

// ListEmployeesOutput represents the output of an employee listing.
type ListEmployeesOutput struct {
	Employees []*entity.Employee
}

// ListEmployeesUseCase handles employee listing logic.
type ListEmployeesUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewListEmployeesUseCase creates a new ListEmployeesUseCase instance.
func NewListEmployeesUseCase(employeeRepo adapter.EmployeeRepository) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute returns every employee, active ones first.
func (uc *ListEmployeesUseCase) Execute(ctx context.Context) (*ListEmployeesOutput, error) {
	employees, err := uc.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return &ListEmployeesOutput{
		Employees: employees,
	}, nil
}

// DeleteEmployeeInput represents the input for employee deletion.
type DeleteEmployeeInput struct {
	ID uuid.UUID
}

// DeleteEmployeeUseCase handles employee deletion logic.
type DeleteEmployeeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewDeleteEmployeeUseCase creates a new DeleteEmployeeUseCase instance.
func NewDeleteEmployeeUseCase(employeeRepo adapter.EmployeeRepository) *DeleteEmployeeUseCase {
	return &DeleteEmployeeUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute performs the employee deletion. Overtime records on projects
// reference employees by snapshotted ID and cost, so deletion never cascades.
func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, input DeleteEmployeeInput) error {
	if _, err := uc.employeeRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.employeeRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
