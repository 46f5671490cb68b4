package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Render errors
	ErrWrite    ErrorCode = "WRITE"
	ErrFlush    ErrorCode = "FLUSH"
	ErrConsumed ErrorCode = "CONSUMED"

	// Registry errors
	// ErrIconLookup is reserved: the built-in registry is total over
	// the known icon kinds, but themed registries may grow.
	ErrIconLookup         ErrorCode = "ICON_LOOKUP"
	ErrAlreadyInitialized ErrorCode = "ALREADY_INITIALIZED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// MurmurError represents a structured error with code and details.
//
// The code set is open: callers branching on codes must keep a
// default arm, so new codes can be added without breaking them.
type MurmurError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MurmurError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MurmurError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MurmurError) Is(target error) bool {
	var targetErr *MurmurError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MurmurError with the given code and message
func New(code ErrorCode, message string) *MurmurError {
	return &MurmurError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MurmurError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MurmurError {
	return &MurmurError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MurmurError
func Wrap(err error, code ErrorCode, message string) *MurmurError {
	if err == nil {
		return nil
	}
	return &MurmurError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MurmurError {
	if err == nil {
		return nil
	}
	return &MurmurError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MurmurError) WithDetail(key string, value interface{}) *MurmurError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var merr *MurmurError
	if errors.As(err, &merr) {
		return merr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MurmurError
func GetErrorCode(err error) ErrorCode {
	var merr *MurmurError
	if errors.As(err, &merr) {
		return merr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MurmurError
func GetErrorDetails(err error) map[string]interface{} {
	var merr *MurmurError
	if errors.As(err, &merr) {
		return merr.Details
	}
	return nil
}
