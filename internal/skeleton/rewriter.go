package skeleton

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
)

// RewriteFiles replaces placeholder tokens in each file and writes it back
// with its original permissions. A file that is not valid UTF-8 aborts the
// run with an encoding error; files already rewritten stay rewritten.
// It returns the rewritten paths relative to dst.
func RewriteFiles(fsys afero.Fs, dst string, files []string, p Params) ([]string, error) {
	plain := ContentSubstitutions(p, false)
	upper := ContentSubstitutions(p, true)

	rewritten := make([]string, 0, len(files))
	for _, path := range files {
		subs := plain
		if isUpperTokenFile(path, p) {
			subs = upper
		}

		if err := rewriteFile(fsys, path, subs); err != nil {
			return rewritten, err
		}
		rewritten = append(rewritten, relSlash(dst, path))
	}

	return rewritten, nil
}

func rewriteFile(fsys afero.Fs, path string, subs Substitutions) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("reading %s", path))
	}

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("reading %s", path))
	}
	if !utf8.Valid(content) {
		return oerrors.NewEncodingError(path)
	}

	rewritten := subs.Apply(string(content))

	output.Debug("rewriting file", "path", path, "changed", rewritten != string(content))
	if err := afero.WriteFile(fsys, path, []byte(rewritten), info.Mode().Perm()); err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("writing %s", path))
	}
	return nil
}

// isUpperTokenFile reports whether path receives the {template_upper}
// substitution: t_<plugin>.<ext> anywhere, or <plugin>.<ext> directly
// inside a directory named "common".
func isUpperTokenFile(path string, p Params) bool {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	stem := strings.TrimSuffix(name, ext)
	plugin := p.PluginLower()

	if stem == TestFilePrefix+plugin {
		return true
	}
	return stem == plugin && filepath.Base(filepath.Dir(path)) == CommonDir
}
