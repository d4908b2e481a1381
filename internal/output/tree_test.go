package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("Filter", nil))
}

func TestRenderFileTree_Structure(t *testing.T) {
	files := map[string]string{
		"package.json":                  "Project manifest",
		"gulpfile.js":                   "",
		"src/filter/t_myfilter.js":      "renamed from t_template.js",
		"src/filter/common/myfilter.js": "renamed from template.js",
		"src/filter/common/helpers.js":  "",
	}

	out := RenderFileTree("Filter", files)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Contains(t, lines[0], "Filter/")
	// Directories sort before files.
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, out, "t_myfilter.js")
	assert.Contains(t, out, "renamed from template.js")
	assert.Contains(t, out, "└── ")
	assert.Contains(t, out, "├── ")
	assert.Less(t, strings.Index(out, "helpers.js"), strings.Index(out, "myfilter.js"))
}

func TestRenderFileList(t *testing.T) {
	out := RenderFileList("Filter", map[string]string{
		"b.js":       "",
		"a.js":       "renamed",
		"src/x/y.js": "",
	})

	assert.Equal(t, "Filter/a.js\trenamed\nFilter/b.js\nFilter/src/x/y.js\n", out)
}
