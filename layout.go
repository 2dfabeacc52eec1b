package cmakeext

import (
	"fmt"
	"path/filepath"
	"strings"
)

// HostLayout captures where the host packaging system expects compiled
// extension modules to end up.
//
// This mirrors build_ext's placement rules:
//   - BuildLib: staging directory for a regular build
//   - Inplace: place modules next to the package sources instead
//   - ExtSuffix: file suffix of extension modules (".so", ".pyd")
type HostLayout struct {
	BuildLib  string
	Inplace   bool
	ExtSuffix string
}

// DefaultHostLayout returns the layout of a plain "build_ext" run on family.
// Both the build directory tag and the module suffix follow family.
func DefaultHostLayout(family PlatformFamily) HostLayout {
	return HostLayout{
		BuildLib:  filepath.Join("build", "lib."+family.Tag()),
		ExtSuffix: family.ExtSuffix(),
	}
}

// ExtFullPath returns the absolute path the host expects for the extension
// module called name.
//
// Dotted names become nested directories: "pkg.sub._native" maps to
// <base>/pkg/sub/_native<ExtSuffix>, where <base> is BuildLib, or the
// current directory for in-place builds.
func (l HostLayout) ExtFullPath(name string) (string, error) {
	parts := strings.Split(name, ".")

	base := l.BuildLib
	if l.Inplace || base == "" {
		base = "."
	}

	rel := filepath.Join(append([]string{base}, parts...)...) + l.ExtSuffix
	full, err := filepath.Abs(rel)
	if err != nil {
		return "", fmt.Errorf("failed to resolve artifact path for %s: %w", name, err)
	}
	return full, nil
}

// NewBuildContext derives the build context for ext.
func (l HostLayout) NewBuildContext(ext Extension, python string) (*BuildContext, error) {
	full, err := l.ExtFullPath(ext.Name)
	if err != nil {
		return nil, err
	}

	return &BuildContext{
		Extension:        ext,
		OutputDir:        filepath.Dir(full),
		ArtifactPath:     full,
		PythonExecutable: python,
	}, nil
}
