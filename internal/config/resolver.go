package config

import (
	"os"
	"strings"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// EnvVar returns the environment variable name for a config key.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// source mirrors viper's precedence to report the winning layer for key.
func (l *Loader) source(key string) ConfigSource {
	if l.opts.Flags != nil {
		for name, k := range flagKeys {
			if k != key {
				continue
			}
			if f := l.opts.Flags.Lookup(name); f != nil && f.Changed {
				return SourceFlag
			}
		}
	}
	if _, ok := os.LookupEnv(EnvVar(key)); ok {
		return SourceEnv
	}
	if l.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}
