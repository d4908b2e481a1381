package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ctoplugin/skeleton/internal/cmdtypes"
	"github.com/ctoplugin/skeleton/internal/config"
	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
)

const configHeader = `# cto-skeleton configuration
#
# source_dir: template tree copied for every new skeleton
# output_dir: parent directory of generated skeletons
# Relative paths resolve against the working directory; ~ expands to $HOME.

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a cto-skeleton configuration file with default values.

The file is created at ~/.cto-skeleton/config.yaml by default.
Use --config or CTO_SKELETON_CONFIG to choose a different location.

Examples:
  # Initialize configuration
  cto-skeleton config init

  # Overwrite existing configuration
  cto-skeleton config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	configFile := cfg.ConfigPath
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return oerrors.NewExitError(fmt.Errorf("getting config file path: %w", err))
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("expanding config path: %w", err))
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return oerrors.NewExitError(oerrors.FromFS(err, "checking config file"))
	}
	if exists && !force {
		return oerrors.NewExitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: expandedPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return oerrors.NewExitError(oerrors.FromFS(err, "creating config directory"))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("marshaling config: %w", err))
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return oerrors.NewExitError(oerrors.FromFS(err, "writing config file"))
	}

	output.Debug("wrote config file", "path", expandedPath, "force", force)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+expandedPath))
	return nil
}
