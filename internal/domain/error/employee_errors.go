package error

import "errors"

// Employee domain errors.
var (
	// ErrEmployeeNotFound is returned when an employee is not found.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrMissingEmployeeFields is returned when required employee fields are absent.
	ErrMissingEmployeeFields = errors.New("missing required employee fields")

	// ErrInvalidSalary is returned when the salary is zero or negative.
	ErrInvalidSalary = errors.New("salary must be greater than zero")

	// ErrInvalidOvertimeType is returned when the overtime type is unknown.
	ErrInvalidOvertimeType = errors.New("invalid overtime type")

	// ErrInvalidOvertimeHours is returned when the overtime hours are not positive.
	ErrInvalidOvertimeHours = errors.New("overtime hours must be greater than zero")

	// ErrInactiveEmployee is returned when overtime is recorded against an
	// inactive employee.
	ErrInactiveEmployee = errors.New("employee is not active")
)

// EmployeeErrorCode defines error codes for employee errors.
// Format: EMP-XXYYYY where XX is category and YYYY is specific error.
type EmployeeErrorCode string

const (
	ErrCodeEmployeeNotFound      EmployeeErrorCode = "EMP-010001"
	ErrCodeMissingEmployeeFields EmployeeErrorCode = "EMP-010002"
	ErrCodeInvalidSalary         EmployeeErrorCode = "EMP-010003"
	ErrCodeInvalidOvertimeType   EmployeeErrorCode = "EMP-010004"
	ErrCodeInvalidOvertimeHours  EmployeeErrorCode = "EMP-010005"
	ErrCodeInactiveEmployee      EmployeeErrorCode = "EMP-010006"
)

// EmployeeError represents an employee error with code and message.
type EmployeeError struct {
	Code    EmployeeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmployeeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmployeeError) Unwrap() error {
	return e.Err
}

// NewEmployeeError creates a new EmployeeError with the given code and message.
func NewEmployeeError(code EmployeeErrorCode, message string, err error) *EmployeeError {
	return &EmployeeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
