// Package config provides configuration loading and management.
package config

import (
	"strings"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

// Default directory locations, relative to the working directory.
const (
	DefaultSourceDir = "lib/module"
	DefaultOutputDir = "skeleton"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the cto-skeleton configuration.
// Loaded from ~/.cto-skeleton/config.yaml, environment, and flags.
type Config struct {
	// SourceDir is the template tree copied for every new skeleton.
	// Env: CTO_SKELETON_SOURCE_DIR, Flag: --source
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`

	// OutputDir is the parent directory of generated skeletons.
	// Env: CTO_SKELETON_OUTPUT_DIR, Flag: --output
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `cto-skeleton config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		SourceDir: DefaultSourceDir,
		OutputDir: DefaultOutputDir,
	}
}

// Validate checks that required directories are configured.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceDir) == "" {
		return oerrors.NewValidationError("source_dir must not be empty", "source_dir",
			"Set source_dir in the config file or pass --source.")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return oerrors.NewValidationError("output_dir must not be empty", "output_dir",
			"Set output_dir in the config file or pass --output.")
	}
	return nil
}
