package cmakeext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CMake constants
const (
	cmakeName    = "CMake"
	cmakeProgram = "cmake"

	// LibraryOutputDirVar receives the directory the shared library is written to.
	LibraryOutputDirVar = "CMAKE_LIBRARY_OUTPUT_DIRECTORY"
	// PythonExecutableVar receives the interpreter the extension is built against.
	PythonExecutableVar = "PYTHON_EXECUTABLE"
)

// Swapped in tests.
var execCommandContext = exec.CommandContext

// CmakeBuilder drives a real cmake executable.
//
// Both phases inherit the configured Stdout and Stderr so the user sees
// CMake's own progress output.
type CmakeBuilder struct {
	Program string    // Executable name or path, "cmake" if empty
	Stdout  io.Writer // Defaults to os.Stdout
	Stderr  io.Writer // Defaults to os.Stderr
}

// NewCmakeBuilder returns a builder that runs "cmake" from PATH.
func NewCmakeBuilder() *CmakeBuilder {
	return &CmakeBuilder{
		Program: cmakeProgram,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Name returns the builder name
func (b *CmakeBuilder) Name() string {
	return cmakeName
}

// Version runs "cmake --version".
//
// Only a failure to start the process means the tool is missing. A cmake that
// starts and then fails, by exit code or by signal, is a generic error.
func (b *CmakeBuilder) Version(ctx context.Context) (string, error) {
	var out bytes.Buffer
	cmd := execCommandContext(ctx, b.program(), "--version")
	cmd.Stdout = &out
	cmd.Stderr = b.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s: %v", ErrToolNotFound, b.program(), err)
		}
		return "", fmt.Errorf("%s --version failed: %w", b.program(), err)
	}
	return out.String(), nil
}

// Configure runs "cmake <args...>" inside dir
func (b *CmakeBuilder) Configure(ctx context.Context, dir string, args []string) error {
	return b.run(ctx, dir, args...)
}

// Build runs "cmake --build ." inside dir
func (b *CmakeBuilder) Build(ctx context.Context, dir string) error {
	return b.run(ctx, dir, "--build", ".")
}

// run executes cmake directly rather than through mage's sh.Exec, which has
// no working directory option and expands $VAR references in arguments.
func (b *CmakeBuilder) run(ctx context.Context, dir string, args ...string) error {
	cmd := execCommandContext(ctx, b.program(), args...)
	cmd.Dir = dir
	cmd.Stdout = b.stdout()
	cmd.Stderr = b.stderr()
	return cmd.Run()
}

func (b *CmakeBuilder) program() string {
	if b.Program == "" {
		return cmakeProgram
	}
	return b.Program
}

func (b *CmakeBuilder) stdout() io.Writer {
	if b.Stdout == nil {
		return os.Stdout
	}
	return b.Stdout
}

func (b *CmakeBuilder) stderr() io.Writer {
	if b.Stderr == nil {
		return os.Stderr
	}
	return b.Stderr
}

// ConfigureArgs returns the configure-phase arguments for bc:
//
//	. -DCMAKE_LIBRARY_OUTPUT_DIRECTORY=<output dir> -DPYTHON_EXECUTABLE=<python>
//
// Paths are inserted verbatim. No quoting is needed since no shell is involved.
func ConfigureArgs(bc *BuildContext) []string {
	return []string{
		".",
		fmt.Sprintf("-D%s=%s", LibraryOutputDirVar, bc.OutputDir),
		fmt.Sprintf("-D%s=%s", PythonExecutableVar, bc.PythonExecutable),
	}
}
