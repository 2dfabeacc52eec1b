package cmakeext

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// PythonEnvVar overrides interpreter discovery.
const PythonEnvVar = "PYTHON_EXECUTABLE"

var pythonCandidates = []string{"python3", "python"}

// Swapped in tests.
var execLookPath = exec.LookPath

// ResolvePython returns the absolute path of the interpreter the extension
// is built against.
//
// $PYTHON_EXECUTABLE wins when set. Otherwise the first of python3 and
// python found on PATH is used.
func ResolvePython() (string, error) {
	if python := os.Getenv(PythonEnvVar); python != "" {
		return absPath(python)
	}

	for _, candidate := range pythonCandidates {
		if path, err := execLookPath(candidate); err == nil {
			return absPath(path)
		}
	}

	return "", fmt.Errorf("no Python interpreter found: set %s or put python3 on PATH", PythonEnvVar)
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
