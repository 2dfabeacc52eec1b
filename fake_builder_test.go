package cmakeext

import (
	"bytes"
	"context"
	"strings"
)

type builderCall struct {
	phase Phase
	dir   string
	args  []string
}

// fakeBuilder records calls and returns scripted results.
type fakeBuilder struct {
	versionOutput string
	versionErr    error
	configureErr  error
	buildErr      error

	versionCalls int
	calls        []builderCall

	onBuild func(outputDir string) error
	lastOut string

	// stdout, when set, is snapshotted on every Configure call.
	stdout            *bytes.Buffer
	stdoutAtConfigure []string
}

func (f *fakeBuilder) Name() string { return cmakeName }

func (f *fakeBuilder) Version(context.Context) (string, error) {
	f.versionCalls++
	if f.versionErr != nil {
		return "", f.versionErr
	}
	if f.versionOutput == "" {
		return "cmake version 3.28.3\n\nCMake suite maintained and supported by Kitware (kitware.com/cmake).\n", nil
	}
	return f.versionOutput, nil
}

func (f *fakeBuilder) Configure(_ context.Context, dir string, args []string) error {
	f.calls = append(f.calls, builderCall{phase: PhaseConfigure, dir: dir, args: append([]string(nil), args...)})
	if f.stdout != nil {
		f.stdoutAtConfigure = append(f.stdoutAtConfigure, f.stdout.String())
	}
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, "-D"+LibraryOutputDirVar+"="); ok {
			f.lastOut = v
		}
	}
	return f.configureErr
}

func (f *fakeBuilder) Build(_ context.Context, dir string) error {
	f.calls = append(f.calls, builderCall{phase: PhaseBuild, dir: dir})
	if f.buildErr != nil {
		return f.buildErr
	}
	if f.onBuild != nil {
		return f.onBuild(f.lastOut)
	}
	return nil
}

func (f *fakeBuilder) phases() []Phase {
	var phases []Phase
	for _, c := range f.calls {
		phases = append(phases, c.phase)
	}
	return phases
}
