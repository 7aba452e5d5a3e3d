package store

import (
	"errors"
	"fmt"
)

// StoreErrorType categorizes store errors.
type StoreErrorType int

const (
	// DirectoryUnavailable indicates the store root could not be created or is not a directory.
	DirectoryUnavailable StoreErrorType = iota
	// TemplateNotFound indicates no template has the requested name.
	TemplateNotFound
	// NameCollision indicates a template with the requested name already exists.
	NameCollision
	// InvalidTemplateName indicates a name that cannot be used as a file stem.
	InvalidTemplateName
	// WalkFailed indicates the store directory could not be enumerated.
	WalkFailed
	// WriteFailed indicates a template file could not be written.
	WriteFailed
	// RemoveFailed indicates a template file could not be deleted.
	RemoveFailed
)

// StoreError represents a store operation failure.
type StoreError struct {
	// Type categorizes the error.
	Type StoreErrorType
	// Message is the error message.
	Message string
	// Path is the file or directory involved.
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

func newStoreError(typ StoreErrorType, message, path string, cause error) *StoreError {
	return &StoreError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

func isType(err error, typ StoreErrorType) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Type == typ
	}
	return false
}

// IsNotFound reports whether err is a TemplateNotFound error.
func IsNotFound(err error) bool {
	return isType(err, TemplateNotFound)
}

// IsCollision reports whether err is a NameCollision error.
func IsCollision(err error) bool {
	return isType(err, NameCollision)
}

// IsDirectoryUnavailable reports whether err is a DirectoryUnavailable error.
func IsDirectoryUnavailable(err error) bool {
	return isType(err, DirectoryUnavailable)
}
