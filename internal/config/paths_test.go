package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, "config.yaml", filepath.Base(paths.ConfigFile))
	assert.Equal(t, ".cto-skeleton", filepath.Base(filepath.Dir(paths.ConfigFile)))
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/skeleton", "/etc/skeleton"},
		{"relative", "lib/module", "lib/module"},
		{"tilde only", "~", home},
		{"tilde path", "~/templates/module", filepath.Join(home, "templates/module")},
		{"tilde user unsupported", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")

	exists, err := ConfigFileExists(file)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(file, []byte("source_dir: x\n"), 0o644))

	exists, err = ConfigFileExists(file)
	require.NoError(t, err)
	assert.True(t, exists)
}
