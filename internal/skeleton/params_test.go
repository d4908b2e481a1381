package skeleton

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid", Params{Module: "Filter", Plugin: "myfilter", Version: "1.0.0", Description: "d"}, false},
		{"empty version and description allowed", Params{Module: "Filter", Plugin: "myfilter"}, false},
		{"empty module", Params{Plugin: "myfilter"}, true},
		{"blank plugin", Params{Module: "Filter", Plugin: "  "}, true},
		{"module with separator", Params{Module: "a/b", Plugin: "p"}, true},
		{"plugin with backslash", Params{Module: "m", Plugin: `p\q`}, true},
		{"dot-dot module", Params{Module: "..", Plugin: "p"}, true},
		{"dot plugin", Params{Module: "m", Plugin: "."}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestParams_DerivedNames(t *testing.T) {
	tests := []struct {
		name        string
		params      Params
		moduleLower string
		pluginLower string
		pluginUpper string
	}{
		{"lower input", Params{Module: "filter", Plugin: "myfilter"}, "filter", "myfilter", "Myfilter"},
		{"mixed case keeps rest", Params{Module: "Filter", Plugin: "myFilter"}, "filter", "myfilter", "MyFilter"},
		{"already upper", Params{Module: "FILTER", Plugin: "MYFILTER"}, "filter", "myfilter", "MYFILTER"},
		{"unicode", Params{Module: "Ärger", Plugin: "éclair"}, "ärger", "éclair", "Éclair"},
		{"digit first", Params{Module: "M1", Plugin: "1st"}, "m1", "1st", "1st"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.moduleLower, tt.params.ModuleLower())
			assert.Equal(t, tt.pluginLower, tt.params.PluginLower())
			assert.Equal(t, tt.pluginUpper, tt.params.PluginUpperFirst())
		})
	}
}

func TestParams_DerivedNamesConcurrent(t *testing.T) {
	p := Params{Module: "Ärger", Plugin: "éclair"}

	var wg sync.WaitGroup
	results := make([][3]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = [3]string{p.ModuleLower(), p.PluginLower(), p.PluginUpperFirst()}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, [3]string{"ärger", "éclair", "Éclair"}, r)
	}
}

func TestUpperFirst_Empty(t *testing.T) {
	assert.Equal(t, "", upperFirst(""))
}

func TestParams_SemverWarning(t *testing.T) {
	assert.Empty(t, Params{Version: "1.0.0"}.SemverWarning())
	assert.Empty(t, Params{Version: "v2.3.4-beta.1"}.SemverWarning())
	assert.NotEmpty(t, Params{Version: "latest"}.SemverWarning())
	assert.NotEmpty(t, Params{Version: ""}.SemverWarning())
}
