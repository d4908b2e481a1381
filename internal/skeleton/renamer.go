package skeleton

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
)

// ModuleFolder returns the template's module folder under dst.
func ModuleFolder(dst string) string {
	return filepath.Join(dst, "src", TemplateSegment)
}

// RenameModuleFolder renames dst/src/template to dst/src/<lower module>
// and returns the new path.
func RenameModuleFolder(fsys afero.Fs, dst, module string) (string, error) {
	from := ModuleFolder(dst)
	to := filepath.Join(dst, "src", lower(module))

	info, err := fsys.Stat(from)
	if err != nil {
		if os.IsNotExist(err) {
			return "", oerrors.NewNotFoundError("module folder missing from template", from,
				"The template must contain src/template/.")
		}
		return "", oerrors.FromFS(err, fmt.Sprintf("checking %s", from))
	}
	if !info.IsDir() {
		return "", oerrors.NewNotFoundError("module folder is not a directory", from, "")
	}

	if from == to {
		return to, nil
	}

	if _, err := lstat(fsys, to); err == nil {
		return "", oerrors.NewDestinationExistsError(to)
	}

	output.Debug("renaming module folder", "from", from, "to", to)
	if err := fsys.Rename(from, to); err != nil {
		return "", oerrors.FromFS(err, fmt.Sprintf("renaming %s", from))
	}
	return to, nil
}

// RenamePlaceholderFiles renames every file under dst whose base name
// contains "template", substituting the lower-cased plugin name. The manifest
// and directories are never renamed. Candidates are collected before the
// first rename so the walk sees a stable tree.
func RenamePlaceholderFiles(fsys afero.Fs, dst, plugin string) ([]Rename, error) {
	files, err := ListFiles(fsys, dst)
	if err != nil {
		return nil, err
	}

	pluginLower := lower(plugin)

	var renames []Rename
	for _, path := range files {
		name := filepath.Base(path)
		if !strings.Contains(name, TemplateSegment) {
			continue
		}

		target := filepath.Join(filepath.Dir(path), strings.ReplaceAll(name, TemplateSegment, pluginLower))
		if target == path {
			continue
		}
		if _, err := lstat(fsys, target); err == nil {
			return renames, oerrors.NewDestinationExistsError(target)
		}

		output.Debug("renaming file", "from", relSlash(dst, path), "to", relSlash(dst, target))
		if err := fsys.Rename(path, target); err != nil {
			return renames, oerrors.FromFS(err, fmt.Sprintf("renaming %s", path))
		}

		renames = append(renames, Rename{From: relSlash(dst, path), To: relSlash(dst, target)})
	}

	return renames, nil
}
