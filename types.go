package cmakeext

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extension describes a native module that CMake builds.
//
// An Extension is created once from the static setup manifest and never
// modified afterwards:
//   - Name: dotted module name ("mlir_bindings", "pkg.sub._native")
//   - SourceDir: absolute directory containing the root CMakeLists.txt
//
// The source directory is not checked up front. If it has no CMakeLists.txt
// the configure phase fails and reports it.
type Extension struct {
	Name      string // Dotted Python module name
	SourceDir string // Absolute path to the CMake project
}

// NewExtension validates the module name and makes sourceDir absolute
// relative to the current working directory.
func NewExtension(name, sourceDir string) (Extension, error) {
	if name == "" {
		return Extension{}, fmt.Errorf("extension name must not be empty")
	}
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return Extension{}, fmt.Errorf("invalid extension name %q", name)
		}
	}

	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return Extension{}, fmt.Errorf("failed to resolve source directory for %s: %w", name, err)
	}

	return Extension{Name: name, SourceDir: abs}, nil
}

// BuildContext is the working state for building a single extension.
//
// It is derived from the extension and the host layout right before the
// extension is built, and is never shared between extensions.
type BuildContext struct {
	Extension        Extension
	OutputDir        string // Directory CMake writes the shared library into
	ArtifactPath     string // Full path the host packaging system expects
	PythonExecutable string // Absolute path of the interpreter to build against
}

// ExtensionNames returns the names of exts in declaration order.
func ExtensionNames(exts []Extension) []string {
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		names = append(names, ext.Name)
	}
	return names
}
