package error

import "errors"

// Session identity errors. Identity issuance lives in an external provider;
// these cover only the bearer-token checks done at the API boundary.
var (
	// ErrMissingToken is returned when no bearer token accompanies the request.
	ErrMissingToken = errors.New("missing session token")

	// ErrInvalidToken is returned when the bearer token is malformed or expired.
	ErrInvalidToken = errors.New("invalid session token")
)

// SessionErrorCode defines error codes for session errors.
// Format: SES-XXYYYY where XX is category and YYYY is specific error.
type SessionErrorCode string

const (
	ErrCodeMissingToken SessionErrorCode = "SES-010001"
	ErrCodeInvalidToken SessionErrorCode = "SES-010002"
	ErrCodeRateLimited  SessionErrorCode = "SES-020001"
)
