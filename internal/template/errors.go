package template

import (
	"errors"
	"fmt"
)

// ParseErrorType represents the type of parsing error.
type ParseErrorType int

const (
	// MissingHeaderStart indicates the content does not begin with the header delimiter.
	MissingHeaderStart ParseErrorType = iota
	// MissingHeaderEnd indicates no closing delimiter line follows the opening one.
	MissingHeaderEnd
	// HeaderDecodeError indicates the header is not a flat mapping of supported values.
	HeaderDecodeError
	// EmptyBody indicates nothing but whitespace follows the header.
	EmptyBody
	// InvalidName indicates no template name can be derived from the path.
	InvalidName
	// ReadFailed indicates the template file could not be read.
	ReadFailed
)

// String returns a short identifier for the error type.
func (t ParseErrorType) String() string {
	switch t {
	case MissingHeaderStart:
		return "missing header start"
	case MissingHeaderEnd:
		return "missing header end"
	case HeaderDecodeError:
		return "header decode error"
	case EmptyBody:
		return "empty body"
	case InvalidName:
		return "invalid name"
	case ReadFailed:
		return "read failed"
	default:
		return "unknown"
	}
}

// ParseError represents a structural template error with the offending file.
type ParseError struct {
	// Type is the error type.
	Type ParseErrorType
	// Message is the error message.
	Message string
	// File is the template file path.
	File string
	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = fmt.Sprintf("invalid template: %s, %s", e.File, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newParseError(typ ParseErrorType, file, message string, cause error) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

// IsParseError reports whether err is a ParseError of the given type.
func IsParseError(err error, typ ParseErrorType) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Type == typ
	}
	return false
}
