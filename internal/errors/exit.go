package errors

import "errors"

// Exit codes returned by the cto-skeleton binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified or I/O error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid arguments, config, or manifest.
	ExitValidationError = 2

	// ExitDestinationExists indicates the output directory was already present.
	ExitDestinationExists = 3

	// ExitNotFound indicates a template path or file was missing.
	ExitNotFound = 4

	// ExitEncodingError indicates a non-text file in the template.
	ExitEncodingError = 5

	// ExitPermissionDenied indicates insufficient filesystem permissions.
	ExitPermissionDenied = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with the exit code derived from its sentinel.
func NewExitError(err error) *ExitError {
	return &ExitError{Code: ExitCodeFromError(err), Err: err}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrDestinationExists):
		return ExitDestinationExists
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrEncoding):
		return ExitEncodingError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitDestinationExists:
		return "Destination Exists"
	case ExitNotFound:
		return "Not Found"
	case ExitEncodingError:
		return "Encoding Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	default:
		return "Unknown"
	}
}
