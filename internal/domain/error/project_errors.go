// Package error defines domain-specific errors for the GestionPro backend.
package error

import "errors"

// Project domain errors.
var (
	// ErrProjectNotFound is returned when a project is not found in the collection.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectsNotLoaded is returned when a mutation arrives before the
	// collection finished loading.
	ErrProjectsNotLoaded = errors.New("project collection is still loading")

	// ErrMissingProjectFields is returned when required project fields are absent.
	ErrMissingProjectFields = errors.New("missing required project fields")

	// ErrInvalidProjectStatus is returned when the status is not one of the known values.
	ErrInvalidProjectStatus = errors.New("invalid project status")

	// ErrNegativeIncome is returned when the income amount is negative.
	ErrNegativeIncome = errors.New("income must not be negative")

	// ErrRemoteDeleteFailed is returned when the remote delete failed; the
	// project has still been removed locally.
	ErrRemoteDeleteFailed = errors.New("remote delete failed")
)

// ProjectErrorCode defines error codes for project errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProjectNotFound       ProjectErrorCode = "PRJ-010001"
	ErrCodeMissingProjectFields  ProjectErrorCode = "PRJ-010002"
	ErrCodeInvalidProjectStatus  ProjectErrorCode = "PRJ-010003"
	ErrCodeNegativeIncome        ProjectErrorCode = "PRJ-010004"
	// State errors (02XXXX)
	ErrCodeProjectsNotLoaded ProjectErrorCode = "PRJ-020001"
	// Remote errors (03XXXX)
	ErrCodeRemoteDeleteFailed ProjectErrorCode = "PRJ-030001"
)

// ProjectError represents a project error with code and message.
type ProjectError struct {
	Code    ProjectErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError with the given code and message.
func NewProjectError(code ProjectErrorCode, message string, err error) *ProjectError {
	return &ProjectError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
