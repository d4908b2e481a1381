package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

func TestExitWith(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStderr string
	}{
		{
			name:       "detail error prints its block",
			err:        fmt.Errorf("copying template: %w", oerrors.NewDestinationExistsError("skeleton/Filter")),
			wantCode:   oerrors.ExitDestinationExists,
			wantStderr: "Error: destination exists\n  Location: skeleton/Filter\n",
		},
		{
			name: "detail error keeps stage context",
			err: fmt.Errorf("patching manifest: %w", &oerrors.DetailError{
				Type:    "not found",
				Message: "manifest missing from template",
				Context: map[string]string{"Stage": "patching manifest", "Module": "Filter"},
				Cause:   oerrors.ErrNotFound,
			}),
			wantCode:   oerrors.ExitNotFound,
			wantStderr: "Error: not found\n  Module: Filter\n  Stage: patching manifest\n",
		},
		{
			name:       "plain error",
			err:        errors.New("disk on fire"),
			wantCode:   oerrors.ExitGeneralError,
			wantStderr: "Error: disk on fire\n",
		},
		{
			name:       "permission via fs wrapper",
			err:        oerrors.FromFS(fmt.Errorf("open x: %w", fs.ErrPermission), "reading x"),
			wantCode:   oerrors.ExitPermissionDenied,
			wantStderr: "reading x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			c := &cobra.Command{}
			c.SetErr(&stderr)

			err := exitWith(c, tt.err, true)

			var exitErr *oerrors.ExitError
			assert.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.True(t, exitErr.Printed)
			assert.Contains(t, stderr.String(), tt.wantStderr)
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", firstLine("one\ntwo"))
	assert.Equal(t, "single", firstLine("single"))
}
