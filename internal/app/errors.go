package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// NothingSelected indicates a command that needs a template got none.
	NothingSelected AppErrorType = iota
	// EditorNotFound indicates no editor is configured.
	EditorNotFound
	// EditorFailed indicates the editor could not run or exited non-zero.
	EditorFailed
	// InvalidTemplate indicates edited content does not parse as a template.
	InvalidTemplate
	// ValidationFailed indicates invalid user input.
	ValidationFailed
	// ApplyFailed indicates a template could not be materialized.
	ApplyFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewNothingSelectedError creates a nothing-selected error.
func NewNothingSelectedError(command string) *AppError {
	return NewAppError(NothingSelected, fmt.Sprintf("no template selected for %s", command), nil)
}

// NewEditorError creates an editor failure error.
func NewEditorError(message string, cause error) *AppError {
	return NewAppError(EditorFailed, message, cause)
}

// NewInvalidTemplateError creates an invalid template error.
func NewInvalidTemplateError(message string, cause error) *AppError {
	return NewAppError(InvalidTemplate, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewApplyError creates an apply error.
func NewApplyError(message string, cause error) *AppError {
	return NewAppError(ApplyFailed, message, cause)
}

// IsAppError reports whether err is an AppError of type typ.
func IsAppError(err error, typ AppErrorType) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Type == typ
	}
	return false
}
