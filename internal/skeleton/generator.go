package skeleton

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
)

// Generator copies a template tree and turns it into a plugin skeleton.
type Generator struct {
	fs   afero.Fs
	opts GenerateOptions
}

// NewGenerator creates a new generator operating on fsys.
func NewGenerator(fsys afero.Fs, opts GenerateOptions) *Generator {
	return &Generator{fs: fsys, opts: opts}
}

// Destination returns the directory the skeleton is generated into.
func (g *Generator) Destination() string {
	return filepath.Join(g.opts.OutputDir, g.opts.Params.Module)
}

// Generate runs the pipeline: copy, rename module folder, patch manifest,
// rename placeholder files, rewrite file contents. Each stage's error is
// returned as-is with stage context; earlier stages are not undone.
func (g *Generator) Generate() (*GenerateResult, error) {
	p := g.opts.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if msg := p.SemverWarning(); msg != "" {
		output.Warn("manifest version is not semver", "version", p.Version, "detail", msg)
	}

	dst := g.Destination()
	output.Debug("generating skeleton",
		"module", p.Module,
		"plugin", p.Plugin,
		"source", g.opts.SourceDir,
		"destination", dst)

	result := &GenerateResult{Destination: dst}

	if err := CopyTree(g.fs, g.opts.SourceDir, dst); err != nil {
		err = g.stageError("copying template", err)
		// A partial copy is reported with the result; a refused or
		// never-started copy left nothing behind.
		if errors.Is(err, oerrors.ErrDestinationExists) {
			return nil, err
		}
		if _, statErr := lstat(g.fs, dst); statErr != nil {
			return nil, err
		}
		return result, err
	}

	moduleDir, err := RenameModuleFolder(g.fs, dst, p.Module)
	if err != nil {
		return result, g.stageError("renaming module folder", err)
	}
	result.ModuleDir = relSlash(dst, moduleDir)

	if err := PatchManifest(g.fs, dst, p); err != nil {
		return result, g.stageError("patching manifest", err)
	}

	renamed, err := RenamePlaceholderFiles(g.fs, dst, p.Plugin)
	result.Renamed = renamed
	if err != nil {
		return result, g.stageError("renaming placeholder files", err)
	}

	// Renames change file identity, so the set is listed again.
	files, err := ListFiles(g.fs, dst)
	if err != nil {
		return result, g.stageError("listing files", err)
	}

	rewritten, err := RewriteFiles(g.fs, dst, files, p)
	result.Files = rewritten
	if err != nil {
		return result, g.stageError("rewriting files", err)
	}

	output.Info("skeleton generated", "module", p.Module, "plugin", p.Plugin, "destination", dst)
	output.Debug("generation summary", "files", len(rewritten), "renamed", len(renamed))
	return result, nil
}

// stageError wraps err with the stage name. A DetailError in the chain also
// gets the stage, module, and plugin as context so the printed block names
// where the run stopped.
func (g *Generator) stageError(stage string, err error) error {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		if detail.Context == nil {
			detail.Context = make(map[string]string, 3)
		}
		detail.Context["Stage"] = stage
		detail.Context["Module"] = g.opts.Params.Module
		detail.Context["Plugin"] = g.opts.Params.Plugin
	}
	return fmt.Errorf("%s: %w", stage, err)
}
