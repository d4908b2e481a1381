package skeleton

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
)

//go:embed schema/package.schema.json
var manifestSchemaBytes []byte

var (
	manifestSchema     *jsonschema.Schema
	manifestSchemaOnce sync.Once
	manifestSchemaErr  error
	printer            = message.NewPrinter(language.English)
)

// PatchManifest substitutes {name}, {version}, and {desc} in dst/package.json.
// Values are JSON-string escaped so quotes or backslashes cannot corrupt the
// manifest, and the result is validated against the embedded manifest schema.
func PatchManifest(fsys afero.Fs, dst string, p Params) error {
	path := filepath.Join(dst, ManifestName)

	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("manifest missing from template", path,
				"The template root must contain package.json.")
		}
		return oerrors.FromFS(err, fmt.Sprintf("reading %s", path))
	}

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("reading %s", path))
	}
	if !utf8.Valid(content) {
		return oerrors.NewEncodingError(path)
	}

	subs := ManifestSubstitutions(p).Map(jsonEscape)
	patched := []byte(subs.Apply(string(content)))

	if err := ValidateManifest(patched); err != nil {
		var detail *oerrors.DetailError
		if errors.As(err, &detail) {
			detail.Location = path
		}
		return err
	}

	output.Debug("patching manifest", "path", path, "name", p.Module, "version", p.Version)
	if err := afero.WriteFile(fsys, path, patched, info.Mode().Perm()); err != nil {
		return oerrors.FromFS(err, fmt.Sprintf("writing %s", path))
	}
	return nil
}

// ValidateManifest checks that data is a JSON object satisfying the manifest schema.
func ValidateManifest(data []byte) error {
	schema, err := getManifestSchema()
	if err != nil {
		return fmt.Errorf("loading manifest schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("manifest is not valid JSON: %v", err),
			Hint:    "Check the template's package.json around the placeholder tokens.",
			Cause:   oerrors.ErrValidation,
		}
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &oerrors.DetailError{
		Type:    "validation failed",
		Message: "manifest does not match schema:\n    " + strings.Join(schemaIssues(ve), "\n    "),
		Cause:   oerrors.ErrValidation,
	}
}

func getManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(manifestSchemaBytes))
		if err != nil {
			manifestSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("package.schema.json", doc); err != nil {
			manifestSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		manifestSchema, manifestSchemaErr = c.Compile("package.schema.json")
	})
	return manifestSchema, manifestSchemaErr
}

// schemaIssues flattens the leaf errors of a validation error tree.
func schemaIssues(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return []string{loc + ": " + msg}
	}

	var issues []string
	for _, cause := range ve.Causes {
		issues = append(issues, schemaIssues(cause)...)
	}
	return issues
}

// jsonEscape returns s encoded as the body of a JSON string, without quotes.
func jsonEscape(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}
