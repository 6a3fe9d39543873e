package employee

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// RecordOvertimeInput represents the input for building an overtime record.
type RecordOvertimeInput struct {
	EmployeeID   uuid.UUID
	OvertimeType entity.OvertimeType
	Hours        decimal.Decimal
}

// RecordOvertimeOutput represents the output of building an overtime record.
// The record's cost is frozen at the employee's current hourly rate; it is
// the caller's business to embed it into a project item.
type RecordOvertimeOutput struct {
	Record entity.OvertimeRecord
}

// RecordOvertimeUseCase prices an overtime line against an employee's
// current rate.
type RecordOvertimeUseCase struct {
	employeeRepo adapter.EmployeeRepository
}

// NewRecordOvertimeUseCase creates a new RecordOvertimeUseCase instance.
func NewRecordOvertimeUseCase(employeeRepo adapter.EmployeeRepository) *RecordOvertimeUseCase {
	return &RecordOvertimeUseCase{
		employeeRepo: employeeRepo,
	}
}

// Execute builds the priced overtime record.
func (uc *RecordOvertimeUseCase) Execute(ctx context.Context, input RecordOvertimeInput) (*RecordOvertimeOutput, error) {
	if !input.OvertimeType.IsValid() {
		return nil, domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidOvertimeType,
			"unknown overtime type",
			domainerror.ErrInvalidOvertimeType,
		)
	}
	if !input.Hours.IsPositive() {
		return nil, domainerror.NewEmployeeError(
			domainerror.ErrCodeInvalidOvertimeHours,
			"overtime hours must be greater than zero",
			domainerror.ErrInvalidOvertimeHours,
		)
	}

	employee, err := uc.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, domainerror.NewEmployeeError(
			domainerror.ErrCodeInactiveEmployee,
			"overtime cannot be recorded against an inactive employee",
			domainerror.ErrInactiveEmployee,
		)
	}

	return &RecordOvertimeOutput{
		Record: entity.NewOvertimeRecord(employee, input.OvertimeType, input.Hours),
	}, nil
}
