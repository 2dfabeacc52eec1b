package cmakeext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLookPath(t *testing.T, found map[string]string) {
	t.Helper()
	orig := execLookPath
	t.Cleanup(func() { execLookPath = orig })

	execLookPath = func(name string) (string, error) {
		if path, ok := found[name]; ok {
			return path, nil
		}
		return "", errors.New("not found")
	}
}

func TestResolvePythonPrefersEnvironment(t *testing.T) {
	t.Setenv(PythonEnvVar, "/opt/python/bin/python3.12")
	stubLookPath(t, map[string]string{"python3": testPython})

	python, err := ResolvePython()
	require.NoError(t, err)
	assert.Equal(t, "/opt/python/bin/python3.12", python)
}

func TestResolvePythonSearchesPath(t *testing.T) {
	t.Setenv(PythonEnvVar, "")

	testCases := []struct {
		name     string
		found    map[string]string
		expected string
	}{
		{"Python3First", map[string]string{"python3": testPython, "python": "/usr/bin/python"}, testPython},
		{"FallsBackToPython", map[string]string{"python": "/usr/bin/python"}, "/usr/bin/python"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stubLookPath(t, tc.found)

			python, err := ResolvePython()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, python)
		})
	}
}

func TestResolvePythonNotFound(t *testing.T) {
	t.Setenv(PythonEnvVar, "")
	stubLookPath(t, nil)

	_, err := ResolvePython()
	require.Error(t, err)
	assert.Contains(t, err.Error(), PythonEnvVar)
}
