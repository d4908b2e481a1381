// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/ctoplugin/skeleton/internal/config"
	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the merged configuration. Nil when loading failed.
	Config *config.Config

	// ConfigPath is the config file location that was consulted.
	ConfigPath string

	// Sources reports which layer supplied each directory setting.
	Sources map[string]config.ConfigSource

	// LoadErr is the config loading error, deferred so that commands which
	// repair configuration can still run.
	LoadErr error

	Verbose bool
}

// Loaded returns the configuration or the error that prevented loading it.
func (g *GlobalConfig) Loaded() (*config.Config, error) {
	if g.LoadErr != nil {
		return nil, g.LoadErr
	}
	if g.Config == nil {
		return config.DefaultConfig(), nil
	}
	return g.Config, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitDestinationExists = oerrors.ExitDestinationExists
	ExitNotFound          = oerrors.ExitNotFound
	ExitEncodingError     = oerrors.ExitEncodingError
	ExitPermissionDenied  = oerrors.ExitPermissionDenied
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
