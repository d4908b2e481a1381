// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ctoplugin/skeleton/internal/cmd/config"
	"github.com/ctoplugin/skeleton/internal/cmdtypes"
	iconfig "github.com/ctoplugin/skeleton/internal/config"
	"github.com/ctoplugin/skeleton/internal/output"
	"github.com/ctoplugin/skeleton/internal/version"
)

// rootFlags holds the global flag values of one root command instance.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
	source     string
	output     string
}

// NewRootCmd creates the root command for the cto-skeleton CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "cto-skeleton <module> <plugin> <version> <description>",
		Short: "Generate a CTO gulp plugin skeleton",
		Long: `cto-skeleton copies the plugin template tree into <output>/<module> and
fills in the placeholders:

  src/template/        renamed to src/<module, lower-cased>
  *template* files     renamed with the lower-cased plugin name
  {template}           replaced with the lower-cased plugin name
  {template_upper}     replaced with the capitalized plugin name in
                       t_<plugin>.* and common/<plugin>.*
  {name} {version} {desc}
                       replaced in package.json

Examples:
  # Generate skeleton/Filter from lib/module
  cto-skeleton Filter myfilter 1.0.0 "Image filter plugin"

  # Use a different template and output directory
  cto-skeleton -s ~/templates/gulp -o ./plugins Filter myfilter 1.0.0 "Image filter plugin"`,
		Args:          validateGenerateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, args, cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Path to config file (env: "+iconfig.EnvConfig+")")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVarP(&flags.source, "source", "s", iconfig.DefaultSourceDir,
		"Template directory (env: "+iconfig.EnvVar(iconfig.KeySourceDir)+")")
	pf.StringVarP(&flags.output, "output", "o", iconfig.DefaultOutputDir,
		"Parent directory of generated skeletons (env: "+iconfig.EnvVar(iconfig.KeyOutputDir)+")")

	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging. A config
// error is kept on cfg rather than returned so `config init` can repair it.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags rootFlags) error {
	*cfg = cmdtypes.GlobalConfig{}

	loader := iconfig.NewLoader(iconfig.LoaderOptions{
		ConfigFile: flags.config,
		Flags:      c.Flags(),
	})

	loaded, err := loader.Load()
	cfg.ConfigPath = loader.ConfigPath()
	cfg.Verbose = flags.verbose

	logCfg := output.LogConfig{Verbose: flags.verbose}
	if err != nil {
		cfg.LoadErr = err
	} else {
		cfg.Config = loaded
		cfg.Sources = loader.Sources()
		logCfg.Timestamps = loaded.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("cto-skeleton started", "version", info.Version, "config", cfg.ConfigPath)
	if err != nil {
		output.Debug("config load error", "error", err)
		return nil
	}

	output.Debug("resolved configuration",
		"source_dir", loaded.SourceDir,
		"source_dir_from", cfg.Sources[iconfig.KeySourceDir],
		"output_dir", loaded.OutputDir,
		"output_dir_from", cfg.Sources[iconfig.KeyOutputDir],
	)
	return nil
}
