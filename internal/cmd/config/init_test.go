package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ctoplugin/skeleton/internal/cmdtypes"
	"github.com/ctoplugin/skeleton/internal/config"
	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

func runInitCmd(t *testing.T, cfg *cmdtypes.GlobalConfig, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewConfigInitCmd(cfg)
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestNewConfigInitCmd(t *testing.T) {
	c := NewConfigInitCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "init", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
	assert.NotNil(t, c.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := runInitCmd(t, &cmdtypes.GlobalConfig{ConfigPath: configFile})
	require.NoError(t, err)
	assert.Contains(t, out, "Config file created: "+configFile)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# cto-skeleton configuration")

	var written config.Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, config.DefaultSourceDir, written.SourceDir)
	assert.Equal(t, config.DefaultOutputDir, written.OutputDir)
}

func TestConfigInit_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfig, "")

	_, err := runInitCmd(t, &cmdtypes.GlobalConfig{})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, ".cto-skeleton", "config.yaml"))
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("# existing config\n"), 0o644))

	_, err := runInitCmd(t, &cmdtypes.GlobalConfig{ConfigPath: configFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, "# existing config\n", string(data))
}

func TestConfigInit_ForceOverwrite(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("# old config\n"), 0o644))

	_, err := runInitCmd(t, &cmdtypes.GlobalConfig{ConfigPath: configFile}, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old config")
	assert.Contains(t, string(data), "source_dir: lib/module")
}

func TestConfigInit_IgnoresLoadError(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &cmdtypes.GlobalConfig{
		ConfigPath: configFile,
		LoadErr:    oerrors.NewNotFoundError("config file does not exist", configFile, ""),
	}

	_, err := runInitCmd(t, cfg)
	require.NoError(t, err)
	assert.FileExists(t, configFile)
}
