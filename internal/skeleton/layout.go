package skeleton

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

// LayoutCheck is the outcome of one template layout check.
type LayoutCheck struct {
	// Name describes what was checked.
	Name string

	// Path is the checked location.
	Path string

	// Err is nil when the check passed.
	Err error
}

// CheckTemplate verifies that src looks like a template tree: a directory
// holding the manifest and the src/template module folder. Every check runs;
// the returned error is the first failure.
func CheckTemplate(fsys afero.Fs, src string) ([]LayoutCheck, error) {
	checks := []LayoutCheck{
		checkPath(fsys, "template directory", src, true),
	}
	if checks[0].Err == nil {
		checks = append(checks,
			checkPath(fsys, "manifest", filepath.Join(src, ManifestName), false),
			checkPath(fsys, "module folder", ModuleFolder(src), true),
		)
	}

	for _, c := range checks {
		if c.Err != nil {
			return checks, c.Err
		}
	}
	return checks, nil
}

func checkPath(fsys afero.Fs, name, path string, wantDir bool) LayoutCheck {
	check := LayoutCheck{Name: name, Path: path}

	info, err := fsys.Stat(path)
	switch {
	case os.IsNotExist(err):
		check.Err = oerrors.NewNotFoundError(name+" not found", path, "")
	case err != nil:
		check.Err = oerrors.FromFS(err, "checking "+path)
	case wantDir && !info.IsDir():
		check.Err = oerrors.NewNotFoundError(name+" is not a directory", path, "")
	case !wantDir && !info.Mode().IsRegular():
		check.Err = oerrors.NewNotFoundError(name+" is not a regular file", path, "")
	}
	return check
}
