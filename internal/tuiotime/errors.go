package tuiotime

import (
	"errors"
	"fmt"
)

// SessionErrorCode categorizes session errors.
type SessionErrorCode string

const (
	// ErrCodeUninitialized indicates relative time was requested before Init.
	ErrCodeUninitialized SessionErrorCode = "UNINITIALIZED"
)

// SessionError is returned by the checked Session accessors.
type SessionError struct {
	Code    SessionErrorCode
	Message string
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUninitialized reports whether err is an uninitialized-origin error.
// Uses errors.As to handle wrapped errors.
func IsUninitialized(err error) bool {
	var se *SessionError
	if errors.As(err, &se) {
		return se.Code == ErrCodeUninitialized
	}
	return false
}

func newUninitializedError() *SessionError {
	return &SessionError{
		Code:    ErrCodeUninitialized,
		Message: "session origin has not been captured",
	}
}
