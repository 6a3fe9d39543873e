package error

import "errors"

// Quote attachment errors.
var (
	// ErrAttachmentUploadFailed is returned when the blob store rejected an upload.
	ErrAttachmentUploadFailed = errors.New("attachment upload failed")

	// ErrAttachmentNotFound is returned when the referenced attachment path is unknown.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrInvalidAttachment is returned when the uploaded file is empty or unnamed.
	ErrInvalidAttachment = errors.New("invalid attachment")
)

// AttachmentErrorCode defines error codes for attachment errors.
// Format: ATT-XXYYYY where XX is category and YYYY is specific error.
type AttachmentErrorCode string

const (
	ErrCodeInvalidAttachment      AttachmentErrorCode = "ATT-010001"
	ErrCodeAttachmentNotFound     AttachmentErrorCode = "ATT-010002"
	ErrCodeAttachmentUploadFailed AttachmentErrorCode = "ATT-030001"
)

// AttachmentError represents an attachment error with code and message.
type AttachmentError struct {
	Code    AttachmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AttachmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AttachmentError) Unwrap() error {
	return e.Err
}

// NewAttachmentError creates a new AttachmentError with the given code and message.
func NewAttachmentError(code AttachmentErrorCode, message string, err error) *AttachmentError {
	return &AttachmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
