package cmakeext

import (
	"context"
	"errors"
)

// ErrToolNotFound is returned (wrapped) by NativeBuilder.Version when the
// native build tool cannot be located or started.
var ErrToolNotFound = errors.New("native build tool not found")

// NativeBuilder is the capability BuildExt uses to drive the native build tool.
//
// CmakeBuilder is the real implementation. Tests substitute a fake that
// records calls and returns scripted results, so no processes are spawned.
//
// # Builder Lifecycle
//
//  1. Version() - called once before any extension is processed
//  2. Configure() - called once per extension, in declaration order
//  3. Build() - called after a successful Configure() for the same extension
//
// # Example Implementation
//
//	type recordingBuilder struct {
//	    calls []string
//	}
//
//	func (b *recordingBuilder) Name() string { return "CMake" }
//
//	func (b *recordingBuilder) Version(ctx context.Context) (string, error) {
//	    return "cmake version 3.28.3", nil
//	}
//
//	func (b *recordingBuilder) Configure(ctx context.Context, dir string, args []string) error {
//	    b.calls = append(b.calls, "configure "+dir)
//	    return nil
//	}
//
//	func (b *recordingBuilder) Build(ctx context.Context, dir string) error {
//	    b.calls = append(b.calls, "build "+dir)
//	    return nil
//	}
type NativeBuilder interface {
	// Name returns the human-readable tool name used in error messages.
	Name() string

	// Version runs the tool's version query and returns its raw output.
	//
	// Returns an error wrapping ErrToolNotFound if the tool could not be
	// started at all. Any other error means the tool ran and failed.
	Version(ctx context.Context) (string, error)

	// Configure runs the configure phase with args inside dir.
	//
	// args are passed to the tool verbatim, without shell expansion.
	Configure(ctx context.Context, dir string, args []string) error

	// Build runs the build phase inside dir.
	Build(ctx context.Context, dir string) error
}
