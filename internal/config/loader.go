package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

// Environment variable prefix for cto-skeleton configuration.
const envPrefix = "CTO_SKELETON"

// Config keys.
const (
	KeySourceDir     = "source_dir"
	KeyOutputDir     = "output_dir"
	KeyLogTimestamps = "log.timestamps"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"source":     KeySourceDir,
	"output":     KeyOutputDir,
	"timestamps": KeyLogTimestamps,
}

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// ConfigFile is the explicit --config value. Empty means default location.
	ConfigFile string

	// Flags are bound to config keys when present. May be nil.
	Flags *pflag.FlagSet
}

// Loader handles loading and merging configuration from multiple sources.
// Precedence: flag > env > config file > default.
type Loader struct {
	v          *viper.Viper
	opts       LoaderOptions
	configPath string
}

// NewLoader creates a new configuration loader.
func NewLoader(opts LoaderOptions) *Loader {
	v := viper.New()

	v.SetDefault(KeySourceDir, DefaultSourceDir)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, opts: opts}
}

// Load reads the config file (if any), environment, and bound flags.
// A missing default config file is not an error; a missing explicit one is.
func (l *Loader) Load() (*Config, error) {
	explicit := l.opts.ConfigFile != ""
	configFile := l.opts.ConfigFile
	if !explicit {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.configPath = expandedPath

	if err := l.bindFlags(); err != nil {
		return nil, err
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			if explicit {
				return nil, oerrors.NewNotFoundError(
					"config file does not exist", expandedPath,
					"Create one with 'cto-skeleton config init'.")
			}
		default:
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("reading config file: %v", err), expandedPath,
				"The config file must be valid YAML.")
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unmarshaling config: %v", err), expandedPath, "")
	}

	return &cfg, nil
}

// ConfigPath returns the config file path used by the last Load.
func (l *Loader) ConfigPath() string {
	return l.configPath
}

// Sources reports where each config key's value came from.
func (l *Loader) Sources() map[string]ConfigSource {
	return map[string]ConfigSource{
		KeySourceDir: l.source(KeySourceDir),
		KeyOutputDir: l.source(KeyOutputDir),
	}
}

func (l *Loader) bindFlags() error {
	if l.opts.Flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := l.opts.Flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}
