package error

import "errors"

// Visit domain errors.
var (
	// ErrVisitNotFound is returned when a visit is not found.
	ErrVisitNotFound = errors.New("visit not found")

	// ErrMissingVisitFields is returned when required visit fields are absent.
	ErrMissingVisitFields = errors.New("missing required visit fields")
)

// VisitErrorCode defines error codes for visit errors.
// Format: VIS-XXYYYY where XX is category and YYYY is specific error.
type VisitErrorCode string

const (
	ErrCodeVisitNotFound      VisitErrorCode = "VIS-010001"
	ErrCodeMissingVisitFields VisitErrorCode = "VIS-010002"
)

// VisitError represents a visit error with code and message.
type VisitError struct {
	Code    VisitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VisitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VisitError) Unwrap() error {
	return e.Err
}

// NewVisitError creates a new VisitError with the given code and message.
func NewVisitError(code VisitErrorCode, message string, err error) *VisitError {
	return &VisitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
