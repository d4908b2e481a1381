package config

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ctoplugin/skeleton/internal/cmdtypes"
	"github.com/ctoplugin/skeleton/internal/config"
	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
	"github.com/ctoplugin/skeleton/internal/skeleton"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration and template layout",
		Long: `Validate the cto-skeleton configuration.

Checks performed:
  1. Config file (if present) is valid YAML
  2. source_dir and output_dir are set
  3. source_dir is a directory containing package.json and src/template/

The config path is resolved using precedence:
  --config flag > CTO_SKELETON_CONFIG env > ~/.cto-skeleton/config.yaml

Examples:
  # Validate default configuration
  cto-skeleton config vet

  # Validate a different template tree
  cto-skeleton config vet --source ~/templates/gulp`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	w := c.OutOrStdout()

	loaded, err := cfg.Loaded()
	if err != nil {
		return oerrors.NewExitError(err)
	}

	exists, err := config.ConfigFileExists(cfg.ConfigPath)
	if err != nil {
		return oerrors.NewExitError(oerrors.FromFS(err, "checking config file"))
	}
	if exists {
		fmt.Fprintln(w, output.FormatCheckmark("Config file: "+cfg.ConfigPath))
	} else {
		fmt.Fprintln(w, output.FormatCheckmark("Config file: none, using defaults"))
	}

	if err := loaded.Validate(); err != nil {
		return oerrors.NewExitError(err)
	}
	settings := []struct{ key, value string }{
		{config.KeySourceDir, loaded.SourceDir},
		{config.KeyOutputDir, loaded.OutputDir},
	}
	for _, s := range settings {
		line := s.key + ": " + s.value
		if src, ok := cfg.Sources[s.key]; ok {
			line += " " + output.StyleDim.Render("("+string(src)+")")
		}
		fmt.Fprintln(w, output.FormatCheckmark(line))
	}

	sourceDir, err := config.ExpandPath(loaded.SourceDir)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("expanding source_dir: %w", err))
	}

	checks, err := skeleton.CheckTemplate(afero.NewOsFs(), sourceDir)
	for _, check := range checks {
		if check.Err != nil {
			fmt.Fprintf(w, "✘ %s: %s\n", check.Name, check.Path)
			continue
		}
		fmt.Fprintln(w, output.FormatCheckmark(check.Name+": "+check.Path))
	}
	if err != nil {
		return oerrors.NewExitError(err)
	}

	fmt.Fprintln(w, output.StyleSummary.Render("Configuration is valid"))
	return nil
}
