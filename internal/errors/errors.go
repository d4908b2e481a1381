// Package errors provides sentinel errors and structured error details for the skeleton CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewDestinationExistsError reports a destination path that is already taken.
func NewDestinationExistsError(location string) error {
	return &DetailError{
		Type:     "destination exists",
		Message:  fmt.Sprintf("refusing to overwrite %s", location),
		Location: location,
		Hint:     "Choose a different module name or remove the existing directory.",
		Cause:    ErrDestinationExists,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewEncodingError reports a file that is not valid UTF-8 text.
func NewEncodingError(location string) error {
	return &DetailError{
		Type:     "encoding error",
		Message:  "file is not valid UTF-8 text",
		Location: location,
		Hint:     "Binary assets cannot be part of the template tree.",
		Cause:    ErrEncoding,
	}
}

// FromFS classifies a filesystem error, attaching ErrPermission or ErrNotFound
// when the underlying cause matches. Other errors are wrapped with message only.
func FromFS(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: %w: %w", message, ErrPermission, err)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w: %w", message, ErrNotFound, err)
	default:
		return fmt.Errorf("%s: %w", message, err)
	}
}
