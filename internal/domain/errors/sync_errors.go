package errors

import (
	"errors"
	"fmt"
)

// SyncError represents a failure of a synchronization job step. The Type
// discriminator decides how callers react: auth and upstream failures abort
// the current run, validation failures abort the current batch.
type SyncError struct {
	Type       string
	Message    string
	Endpoint   string
	StatusCode int
	Cause      error
}

func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (endpoint: %s, status: %d) - %v",
			e.Type, e.Message, e.Endpoint, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("%s: %s (endpoint: %s, status: %d)",
		e.Type, e.Message, e.Endpoint, e.StatusCode)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Sync error types
const (
	ErrTypeAuthFailed     = "AUTH_FAILED"
	ErrTypeUpstreamFailed = "UPSTREAM_FAILED"
	ErrTypeInvalidPayload = "INVALID_PAYLOAD"
)

// NewAuthError creates an error for a rejected login or credential
func NewAuthError(endpoint string, statusCode int, cause error) *SyncError {
	return &SyncError{
		Type:       ErrTypeAuthFailed,
		Message:    "could not validate credentials against the wellness API",
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// NewUpstreamError creates an error for a non-200 data fetch response
func NewUpstreamError(endpoint string, statusCode int, cause error) *SyncError {
	return &SyncError{
		Type:       ErrTypeUpstreamFailed,
		Message:    "wellness API returned a non-success response",
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// NewValidationError creates an error for a malformed upstream payload
func NewValidationError(endpoint string, cause error) *SyncError {
	return &SyncError{
		Type:     ErrTypeInvalidPayload,
		Message:  "wellness API payload did not match the expected shape",
		Endpoint: endpoint,
		Cause:    cause,
	}
}

// IsSyncErrorType reports whether err is a SyncError of the given type.
func IsSyncErrorType(err error, errType string) bool {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Type == errType
	}
	return false
}
