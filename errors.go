package cmakeext

import (
	"fmt"
	"strings"
)

// Phase names one invocation of the native build tool.
type Phase string

// Build phases
const (
	PhaseConfigure Phase = "configure"
	PhaseBuild     Phase = "build"
)

// ToolNotFoundError reports that the native build tool could not be invoked.
// It lists every extension that therefore could not be built.
type ToolNotFoundError struct {
	Tool       string
	Extensions []string
	Err        error
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s must be installed to build the following extensions: %s",
		e.Tool, strings.Join(e.Extensions, ", "))
}

func (e *ToolNotFoundError) Unwrap() error { return e.Err }

// VersionTooOldError reports a native build tool below the minimum version
// required on the current platform family.
type VersionTooOldError struct {
	Tool     string
	Found    string
	Minimum  string
	Platform PlatformFamily
}

func (e *VersionTooOldError) Error() string {
	tool := e.Tool
	if tool == "" {
		tool = cmakeName
	}
	return fmt.Sprintf("%s >= %s is required on %s (found %s)", tool, e.Minimum, e.Platform, e.Found)
}

// NativeBuildError reports a non-success status from the configure or build
// phase of one extension.
//
// It implements ExitStatus so github.com/magefile/mage/sh.ExitStatus maps it
// to the exit code the native tool returned.
type NativeBuildError struct {
	Extension string
	Phase     Phase
	ExitCode  int
	Err       error
}

func (e *NativeBuildError) Error() string {
	return fmt.Sprintf("%s phase failed for extension %s: %v", e.Phase, e.Extension, e.Err)
}

func (e *NativeBuildError) Unwrap() error { return e.Err }

// ExitStatus returns the native tool's exit code, or 1 if it never exited
// with one.
func (e *NativeBuildError) ExitStatus() int {
	if e.ExitCode > 0 {
		return e.ExitCode
	}
	return 1
}
