// Package skeleton generates CTO plugin projects from a template tree.
//
// Generation is a single sequential pass over the filesystem:
// copy the template, rename the module folder, patch the manifest,
// rename placeholder files, and rewrite placeholder tokens in file contents.
// A failed run leaves the destination as far as it got; nothing is rolled back.
package skeleton

// ManifestName is the project manifest patched with module metadata.
const ManifestName = "package.json"

// Placeholder names.
const (
	// TemplateSegment is the literal matched in file names and the module folder.
	TemplateSegment = "template"

	// CommonDir is the directory whose plugin-named file receives {template_upper}.
	CommonDir = "common"

	// TestFilePrefix marks plugin test files that receive {template_upper}.
	TestFilePrefix = "t_"
)

// GenerateOptions configures skeleton generation.
type GenerateOptions struct {
	// SourceDir is the template tree to copy.
	SourceDir string

	// OutputDir is the parent directory; the skeleton lands in OutputDir/<module>.
	OutputDir string

	// Params are the user-supplied substitution values.
	Params Params
}

// Rename records a single rename performed on the destination tree.
type Rename struct {
	// From is the previous path, relative to the destination root.
	From string

	// To is the new path, relative to the destination root.
	To string
}

// GenerateResult contains the result of skeleton generation.
type GenerateResult struct {
	// Destination is the generated skeleton root.
	Destination string

	// ModuleDir is the renamed module folder, relative to Destination.
	ModuleDir string

	// Renamed lists placeholder files renamed after copying.
	Renamed []Rename

	// Files lists every file rewritten, relative to Destination, slash-separated.
	Files []string
}
