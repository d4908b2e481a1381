package skeleton

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

// ListFiles returns every regular file under root except the manifest,
// in lexicographic walk order.
func ListFiles(fsys afero.Fs, root string) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if info.Name() == ManifestName {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, oerrors.FromFS(err, "listing "+root)
	}

	return files, nil
}

// relSlash returns path relative to root with forward slashes.
func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
