// Package errors provides domain-specific error types for guestprep.
//
// It defines structured errors with error codes, making it easier to handle
// and test different failure conditions consistently across the toolkit.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeSumfile indicates a checksum manifest lookup error.
	ErrCodeSumfile ErrorCode = "SUMFILE_ERROR"

	// ErrCodeFetch indicates a media download or verification error.
	ErrCodeFetch ErrorCode = "FETCH_ERROR"

	// ErrCodeExec indicates a subprocess execution error.
	ErrCodeExec ErrorCode = "EXEC_ERROR"

	// ErrCodeSSH indicates an error talking to a guest over SSH/SCP.
	ErrCodeSSH ErrorCode = "SSH_ERROR"

	// ErrCodeCopy indicates a filesystem copy or rendering error.
	ErrCodeCopy ErrorCode = "COPY_ERROR"

	// ErrCodeNetwork indicates a host networking error (interfaces, DNS).
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewSumfileError creates a new checksum manifest error.
func NewSumfileError(message string, cause error) *Error {
	return Wrap(ErrCodeSumfile, message, cause)
}

// NewFetchError creates a new media fetch error.
func NewFetchError(message string, cause error) *Error {
	return Wrap(ErrCodeFetch, message, cause)
}

// NewExecError creates a new subprocess execution error.
func NewExecError(message string, cause error) *Error {
	return Wrap(ErrCodeExec, message, cause)
}

// NewSSHError creates a new guest SSH/SCP error.
func NewSSHError(message string, cause error) *Error {
	return Wrap(ErrCodeSSH, message, cause)
}

// NewCopyError creates a new filesystem copy error.
func NewCopyError(message string, cause error) *Error {
	return Wrap(ErrCodeCopy, message, cause)
}

// NewNetworkError creates a new host networking error.
func NewNetworkError(message string, cause error) *Error {
	return Wrap(ErrCodeNetwork, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
