package skeleton

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

// Params holds the four values supplied on the command line.
type Params struct {
	// Module names the generated project and its src/ folder.
	Module string

	// Plugin names the generated plugin files.
	Plugin string

	// Version is written to the manifest.
	Version string

	// Description is written to the manifest.
	Description string
}

// Validate checks that the names can form paths. Version and description
// are free-form.
func (p Params) Validate() error {
	if strings.TrimSpace(p.Module) == "" {
		return oerrors.NewValidationError("module name must not be empty", "", "")
	}
	if strings.TrimSpace(p.Plugin) == "" {
		return oerrors.NewValidationError("plugin name must not be empty", "", "")
	}
	for _, name := range []string{p.Module, p.Plugin} {
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid name %q: must be a single path segment", name), "",
				"Use a name without path separators.")
		}
	}
	return nil
}

// ModuleLower is the module name used for the src/ folder.
func (p Params) ModuleLower() string {
	return lower(p.Module)
}

// PluginLower is the plugin name used in file names and for {template}.
func (p Params) PluginLower() string {
	return lower(p.Plugin)
}

// PluginUpperFirst is the plugin name with only its first character upper-cased.
func (p Params) PluginUpperFirst() string {
	return upperFirst(p.Plugin)
}

// SemverWarning returns a non-empty message when Version is not a semantic version.
func (p Params) SemverWarning() string {
	if _, err := semver.NewVersion(p.Version); err != nil {
		return fmt.Sprintf("version %q is not a semantic version: %v", p.Version, err)
	}
	return ""
}

// Casers keep state between calls and are not safe for concurrent use, so
// each call builds its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
