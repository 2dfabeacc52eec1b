package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/magefile/mage/sh"
	"github.com/mlir-bindings/cmakeext"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// app holds what the commands share. Tests replace newBuilder and logger.
type app struct {
	manifest   *cmakeext.Manifest
	verbose    bool
	logger     *zap.Logger
	stdout     io.Writer
	stderr     io.Writer
	newBuilder func(stdout, stderr io.Writer) cmakeext.NativeBuilder
}

func newApp(manifest *cmakeext.Manifest) *app {
	return &app{
		manifest: manifest,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		newBuilder: func(stdout, stderr io.Writer) cmakeext.NativeBuilder {
			return &cmakeext.CmakeBuilder{Program: "cmake", Stdout: stdout, Stderr: stderr}
		},
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mlir-setup",
		Short:         a.manifest.Description,
		Long:          fmt.Sprintf("Packaging entry point for %s.\n\nNative extensions are configured and built with CMake.", a.manifest.Name),
		Version:       a.manifest.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nPlatform: %s/%s\n", runtime.GOOS, runtime.GOARCH))
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(a.buildExtCommand())
	root.AddCommand(a.showCommand())

	return root
}

// exitCode maps err to a process exit status. A failed native phase exits
// with the tool's own code.
func exitCode(err error) int {
	if code := sh.ExitStatus(err); code != 0 {
		return code
	}
	return 1
}

func renderError(err error) string {
	return errorStyle.Render("error:") + " " + err.Error()
}
