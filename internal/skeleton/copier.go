package skeleton

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
)

// CopyTree recursively copies the directory src to dst. dst must not exist;
// its parent directories are created as needed. Symlinks are followed and
// their targets copied as regular files or directories. Modes and
// modification times are preserved.
func CopyTree(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("template directory does not exist", src,
				"Point --source at a template tree containing package.json and src/template.")
		}
		return oerrors.FromFS(err, fmt.Sprintf("reading template %s", src))
	}
	if !info.IsDir() {
		return oerrors.NewNotFoundError("template path is not a directory", src, "")
	}

	if _, err := lstat(fsys, dst); err == nil {
		return oerrors.NewDestinationExistsError(dst)
	} else if !os.IsNotExist(err) {
		return oerrors.FromFS(err, fmt.Sprintf("checking destination %s", dst))
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("creating %s", filepath.Dir(dst)))
	}

	output.Debug("copying template", "source", src, "destination", dst)
	return copyDir(fsys, src, dst, info)
}

func copyDir(fsys afero.Fs, src, dst string, info os.FileInfo) error {
	if err := fsys.Mkdir(dst, 0o755); err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("creating directory %s", dst))
	}

	entries, err := afero.ReadDir(fsys, src)
	if err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("reading directory %s", src))
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.Mode()&os.ModeSymlink != 0 {
			// Follow the link; the copy holds the target's content.
			entry, err = fsys.Stat(srcPath)
			if err != nil {
				return oerrors.FromFS(err, fmt.Sprintf("resolving symlink %s", srcPath))
			}
		}

		if entry.IsDir() {
			if err := copyDir(fsys, srcPath, dstPath, entry); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(fsys, srcPath, dstPath, entry); err != nil {
			return err
		}
	}

	// Directory mode is applied last so a read-only template directory
	// can still be populated.
	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("setting mode on %s", dst))
	}
	return chtimes(fsys, dst, info)
}

func copyFile(fsys afero.Fs, src, dst string, info os.FileInfo) error {
	in, err := fsys.Open(src)
	if err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("opening %s", src))
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("creating %s", dst))
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return oerrors.FromFS(err, fmt.Sprintf("copying %s", src))
	}
	if err := out.Close(); err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("writing %s", dst))
	}

	return chtimes(fsys, dst, info)
}

func chtimes(fsys afero.Fs, path string, info os.FileInfo) error {
	if err := fsys.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("setting times on %s", path))
	}
	return nil
}

// lstat uses Lstat when the filesystem supports it so a dangling symlink
// still counts as an existing destination.
func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if lst, ok := fsys.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}
