package cmakeext

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtension(t *testing.T) {
	dir := t.TempDir()

	ext, err := NewExtension("mlir_bindings", dir)
	require.NoError(t, err)
	assert.Equal(t, Extension{Name: "mlir_bindings", SourceDir: dir}, ext)

	rel, err := NewExtension("pkg.mod", "native")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(rel.SourceDir))
	assert.Equal(t, "native", filepath.Base(rel.SourceDir))
}

func TestNewExtensionRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", ".", "pkg.", ".mod", "a..b"} {
		_, err := NewExtension(name, ".")
		assert.Error(t, err, "name %q", name)
	}
}

func TestExtensionNames(t *testing.T) {
	exts := []Extension{{Name: "b"}, {Name: "a"}, {Name: "c"}}
	assert.Equal(t, []string{"b", "a", "c"}, ExtensionNames(exts))
	assert.Empty(t, ExtensionNames(nil))
}
