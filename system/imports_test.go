package system

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Gameplay systems request sounds through audio/cue only, so the package builds without a sound device
func TestSystemsDoNotImportAudioBackend(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err, name)
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			assert.NotEqual(t, "github.com/lixenwraith/vi-shooter/audio", path, name)
			assert.False(t, strings.HasPrefix(path, "github.com/gopxl/beep"), "%s imports %s", name, path)
		}
	}
}
