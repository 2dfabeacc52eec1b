package cmakeext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/magefile/mage/sh"
	"go.uber.org/zap"
)

// BuildExt translates a "build extension" request into native tool
// invocations.
//
// # Process Flow
//
//  1. Preflight: Builder.Version() runs once, whatever the number of extensions
//  2. Version gate: CheckToolVersion() for Platform
//  3. For each extension in declaration order:
//     a. derive the BuildContext from Layout
//     b. print the output directory to Stdout
//     c. Builder.Configure() with ConfigureArgs() in the source directory
//     d. Builder.Build() in the source directory
//
// # Error Handling
//
// Every failure is fatal. The first error stops the run and is returned:
//   - *ToolNotFoundError if the tool could not be started
//   - *VersionTooOldError if the Windows gate rejects the tool
//   - *NativeBuildError if a phase of some extension failed
//
// Nothing is retried and nothing built so far is removed.
//
// # Thread Safety
//
// Run is sequential and must not be called concurrently on the same value.
type BuildExt struct {
	Extensions []Extension
	Builder    NativeBuilder
	Layout     HostLayout
	Python     string         // Absolute interpreter path
	Platform   PlatformFamily // Resolved once, usually with DetectPlatform
	Stdout     io.Writer      // Receives the output directory line, os.Stdout if nil
	Logger     *zap.Logger    // zap.NewNop() if nil
}

// Run builds all extensions.
func (b *BuildExt) Run(ctx context.Context) error {
	if b.Builder == nil {
		return fmt.Errorf("no native builder configured")
	}
	if b.Python == "" {
		return fmt.Errorf("python executable is not set")
	}

	logger := b.logger()

	if err := b.preflight(ctx, logger); err != nil {
		return err
	}

	for _, ext := range b.Extensions {
		if err := b.buildExtension(ctx, logger, ext); err != nil {
			return err
		}
	}

	logger.Info("All extensions built", zap.Int("count", len(b.Extensions)))
	return nil
}

func (b *BuildExt) preflight(ctx context.Context, logger *zap.Logger) error {
	output, err := b.Builder.Version(ctx)
	if err != nil {
		if errors.Is(err, ErrToolNotFound) {
			return &ToolNotFoundError{
				Tool:       b.Builder.Name(),
				Extensions: ExtensionNames(b.Extensions),
				Err:        err,
			}
		}
		return err
	}

	logger.Debug("Native build tool found",
		zap.String("tool", b.Builder.Name()),
		zap.String("version", firstLine(output)),
		zap.Stringer("platform", b.Platform))

	if err := CheckToolVersion(output, b.Platform); err != nil {
		var tooOld *VersionTooOldError
		if errors.As(err, &tooOld) {
			tooOld.Tool = b.Builder.Name()
		}
		return err
	}

	return nil
}

// buildExtension runs configure then build for one extension. Build is never
// attempted after a failed configure.
func (b *BuildExt) buildExtension(ctx context.Context, logger *zap.Logger, ext Extension) error {
	bc, err := b.Layout.NewBuildContext(ext, b.Python)
	if err != nil {
		return err
	}

	fmt.Fprintln(b.stdout(), bc.OutputDir)

	logger.Info("Configuring extension",
		zap.String("extension", ext.Name),
		zap.String("source_dir", ext.SourceDir),
		zap.String("output_dir", bc.OutputDir))

	if err := b.Builder.Configure(ctx, ext.SourceDir, ConfigureArgs(bc)); err != nil {
		return newNativeBuildError(ext, PhaseConfigure, err)
	}

	logger.Info("Building extension", zap.String("extension", ext.Name))

	if err := b.Builder.Build(ctx, ext.SourceDir); err != nil {
		return newNativeBuildError(ext, PhaseBuild, err)
	}

	logger.Debug("Extension built",
		zap.String("extension", ext.Name),
		zap.String("artifact", bc.ArtifactPath))
	return nil
}

func newNativeBuildError(ext Extension, phase Phase, err error) *NativeBuildError {
	return &NativeBuildError{
		Extension: ext.Name,
		Phase:     phase,
		ExitCode:  sh.ExitStatus(err),
		Err:       err,
	}
}

func (b *BuildExt) stdout() io.Writer {
	if b.Stdout == nil {
		return os.Stdout
	}
	return b.Stdout
}

func (b *BuildExt) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}
