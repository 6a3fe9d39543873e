package error

import "errors"

// Storage item catalog domain errors.
var (
	// ErrStorageItemNotFound is returned when a catalog entry is not found.
	ErrStorageItemNotFound = errors.New("storage item not found")

	// ErrMissingStorageItemFields is returned when required catalog fields are absent.
	ErrMissingStorageItemFields = errors.New("missing required storage item fields")

	// ErrInvalidStorageItemCost is returned when the cost is negative.
	ErrInvalidStorageItemCost = errors.New("storage item cost must not be negative")
)

// StorageItemErrorCode defines error codes for storage item errors.
// Format: STI-XXYYYY where XX is category and YYYY is specific error.
type StorageItemErrorCode string

const (
	ErrCodeStorageItemNotFound      StorageItemErrorCode = "STI-010001"
	ErrCodeMissingStorageItemFields StorageItemErrorCode = "STI-010002"
	ErrCodeInvalidStorageItemCost   StorageItemErrorCode = "STI-010003"
)

// StorageItemError represents a storage item error with code and message.
type StorageItemError struct {
	Code    StorageItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageItemError) Unwrap() error {
	return e.Err
}

// NewStorageItemError creates a new StorageItemError with the given code and message.
func NewStorageItemError(code StorageItemErrorCode, message string, err error) *StorageItemError {
	return &StorageItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
