package errors

import (
	"errors"
	"fmt"
)

// AppError is a structured error carrying a stable code alongside the
// human-readable message. The code distinguishes the error taxonomy:
// usage errors raised before any randomness is consumed versus internal
// failures.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError with the given code and message.
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message.
func Newf(code, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context, preserving the code of an
// underlying AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternalError
	var appErr *AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if err carries an AppError anywhere in its
// chain, otherwise "UNKNOWN".
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Error codes.
const (
	// CodeValidationError marks a usage error: a parameter outside its
	// documented range, rejected at the boundary before any draw occurs.
	CodeValidationError = "VALIDATION_ERROR"
	// CodeStreamOutOfRange marks a stream index that slipped past upstream
	// validation; fatal to the call, never clamped or wrapped around.
	CodeStreamOutOfRange = "STREAM_OUT_OF_RANGE"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeExportError      = "EXPORT_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ValidationError constructs a range/usage error.
func ValidationError(message string) *AppError {
	return New(CodeValidationError, message)
}

// ValidationErrorf constructs a range/usage error with a formatted message.
func ValidationErrorf(format string, args ...interface{}) *AppError {
	return Newf(CodeValidationError, format, args...)
}

// StreamOutOfRange constructs the index error for a bad stream lookup.
func StreamOutOfRange(stream, numStreams int) *AppError {
	return Newf(CodeStreamOutOfRange, "stream %d out of range [0,%d]", stream, numStreams-1)
}

// ConfigInvalid constructs a configuration error.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// ExportError wraps a sample-export failure.
func ExportError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: CodeExportError, Message: message, Cause: err}
}
