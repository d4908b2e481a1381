package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid arguments, configuration, or a malformed manifest.
	ErrValidation = errors.New("validation error")

	// ErrDestinationExists indicates the generation target is already present on disk.
	ErrDestinationExists = errors.New("destination exists")

	// ErrNotFound indicates an expected template path or file is missing.
	ErrNotFound = errors.New("not found")

	// ErrEncoding indicates a file could not be read as UTF-8 text.
	ErrEncoding = errors.New("encoding error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)
