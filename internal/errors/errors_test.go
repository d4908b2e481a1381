//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	all := []error{ErrValidation, ErrDestinationExists, ErrNotFound, ErrEncoding, ErrPermission}
	for i := range all {
		for j := range all {
			if i != j {
				assert.NotEqual(t, all[i], all[j])
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "manifest is not valid JSON",
		Location: "skeleton/Filter/package.json",
		Context:  map[string]string{"Module": "Filter", "Plugin": "myfilter"},
		Hint:     "Check the template manifest",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: skeleton/Filter/package.json")
	assert.Contains(t, output, "Module: Filter")
	assert.Contains(t, output, "manifest is not valid JSON")
	assert.Contains(t, output, "Hint: Check the template manifest")
	assert.Less(t, strings.Index(output, "Module:"), strings.Index(output, "Plugin:"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrEncoding}

	assert.True(t, errors.Is(detail, ErrEncoding))
	assert.Equal(t, ErrEncoding, detail.Unwrap())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		typ      string
	}{
		{"validation", NewValidationError("bad", "here", "fix it"), ErrValidation, "validation failed"},
		{"destination exists", NewDestinationExistsError("skeleton/Filter"), ErrDestinationExists, "destination exists"},
		{"not found", NewNotFoundError("missing", "src/template", ""), ErrNotFound, "not found"},
		{"encoding", NewEncodingError("logo.png"), ErrEncoding, "encoding error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))

			var detail *DetailError
			require.True(t, errors.As(tt.err, &detail))
			assert.Equal(t, tt.typ, detail.Type)
		})
	}
}

func TestFromFS(t *testing.T) {
	assert.NoError(t, FromFS(nil, "noop"))

	perm := FromFS(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, "reading x")
	assert.True(t, errors.Is(perm, ErrPermission))
	assert.True(t, errors.Is(perm, fs.ErrPermission))

	missing := FromFS(&fs.PathError{Op: "stat", Path: "y", Err: fs.ErrNotExist}, "stat y")
	assert.True(t, errors.Is(missing, ErrNotFound))

	other := FromFS(fmt.Errorf("disk full"), "writing z")
	assert.False(t, errors.Is(other, ErrPermission))
	assert.False(t, errors.Is(other, ErrNotFound))
	assert.Contains(t, other.Error(), "writing z: disk full")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", fmt.Errorf("bad args: %w", ErrValidation), ExitValidationError},
		{"destination exists", NewDestinationExistsError("out"), ExitDestinationExists},
		{"not found", fmt.Errorf("rename: %w", ErrNotFound), ExitNotFound},
		{"encoding", NewEncodingError("a.png"), ExitEncodingError},
		{"permission", ErrPermission, ExitPermissionDenied},
		{"generic error", errors.New("boom"), ExitGeneralError},
		{"explicit exit error", &ExitError{Code: 42, Err: errors.New("custom")}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	exitErr := NewExitError(NewNotFoundError("missing manifest", "package.json", ""))

	assert.Equal(t, ExitNotFound, exitErr.Code)
	assert.True(t, errors.Is(exitErr, ErrNotFound))
	assert.Contains(t, exitErr.Error(), "missing manifest")

	bare := &ExitError{Code: ExitEncodingError}
	assert.Equal(t, "Encoding Error", bare.Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Destination Exists", ExitCodeName(ExitDestinationExists))
	assert.Equal(t, "Permission Denied", ExitCodeName(ExitPermissionDenied))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
