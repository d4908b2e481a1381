package cmd

import (
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ctoplugin/skeleton/internal/cmdtypes"
	iconfig "github.com/ctoplugin/skeleton/internal/config"
	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
	"github.com/ctoplugin/skeleton/internal/skeleton"
)

func validateGenerateArgs(c *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(4)(c, args); err != nil {
		return exitWith(c, oerrors.NewValidationError(err.Error(), "",
			"Usage: "+c.UseLine()), false)
	}
	return nil
}

func runGenerate(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig) error {
	loaded, err := cfg.Loaded()
	if err != nil {
		return exitWith(c, err, cfg.Verbose)
	}
	if err := loaded.Validate(); err != nil {
		return exitWith(c, err, cfg.Verbose)
	}

	sourceDir, err := iconfig.ExpandPath(loaded.SourceDir)
	if err != nil {
		return exitWith(c, fmt.Errorf("expanding source_dir: %w", err), cfg.Verbose)
	}
	outputDir, err := iconfig.ExpandPath(loaded.OutputDir)
	if err != nil {
		return exitWith(c, fmt.Errorf("expanding output_dir: %w", err), cfg.Verbose)
	}

	params := skeleton.Params{
		Module:      args[0],
		Plugin:      args[1],
		Version:     args[2],
		Description: args[3],
	}

	gen := skeleton.NewGenerator(afero.NewOsFs(), skeleton.GenerateOptions{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		Params:    params,
	})

	result, err := gen.Generate()
	if err != nil {
		if result != nil {
			output.Warn("destination left partially generated", "path", result.Destination)
		}
		return exitWith(c, err, cfg.Verbose)
	}

	printSummary(c.OutOrStdout(), result, params, cfg.Verbose)
	return nil
}

// printSummary writes the completion line, the resolved destination, and the
// generated files. The tree is styled only when stdout is a terminal.
func printSummary(w io.Writer, result *skeleton.GenerateResult, p skeleton.Params, verbose bool) {
	location := result.Destination
	if abs, err := filepath.Abs(location); err == nil {
		location = abs
	}

	tty := output.IsTTY()

	fmt.Fprintln(w, output.FormatCheckmark(output.StyleSummary.Render("Skeleton generated")))
	fmt.Fprintln(w, "  "+output.FormatField("Module", p.Module))
	fmt.Fprintln(w, "  "+output.FormatField("Plugin", p.Plugin))
	fmt.Fprintln(w, "  "+output.FormatField("Location", location))
	fmt.Fprintln(w)

	files := describeFiles(result, tty)
	if tty {
		fmt.Fprint(w, output.RenderFileTree(p.Module, files))
	} else {
		fmt.Fprint(w, output.RenderFileList(p.Module, files))
	}

	if verbose && len(result.Renamed) > 0 {
		rows := make([]output.RenameRow, 0, len(result.Renamed))
		for _, r := range result.Renamed {
			rows = append(rows, output.RenameRow{From: r.From, To: r.To})
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.RenderRenameTable(rows))
	}
}

// describeFiles maps every generated file to its tree description.
func describeFiles(result *skeleton.GenerateResult, styled bool) map[string]string {
	renamedFrom := make(map[string]string, len(result.Renamed))
	for _, r := range result.Renamed {
		renamedFrom[r.To] = r.From
	}

	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	files := make(map[string]string, len(result.Files)+1)
	files[skeleton.ManifestName] = render(output.StyleMuted, "manifest")
	for _, f := range result.Files {
		if from, ok := renamedFrom[f]; ok {
			files[f] = render(output.StyleRenamed, "renamed from "+path.Base(from))
			continue
		}
		files[f] = ""
	}
	return files
}
