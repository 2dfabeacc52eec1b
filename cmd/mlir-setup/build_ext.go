package main

import (
	"github.com/mlir-bindings/cmakeext"
	"github.com/spf13/cobra"
)

type buildExtOptions struct {
	buildLib string
	inplace  bool
}

func (a *app) buildExtCommand() *cobra.Command {
	opts := &buildExtOptions{}

	cmd := &cobra.Command{
		Use:   "build_ext",
		Short: "Build native extensions with CMake",
		Long: `Runs "cmake --version" once, then for each declared extension runs
"cmake ." with the output directory and interpreter settings followed by
"cmake --build ." inside the extension's source directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBuildExt(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.buildLib, "build-lib", "b", "", "directory for compiled extension modules")
	cmd.Flags().BoolVarP(&opts.inplace, "inplace", "i", false, "put compiled extensions next to their package sources")

	return cmd
}

func (a *app) runBuildExt(cmd *cobra.Command, opts *buildExtOptions) error {
	family := cmakeext.DetectPlatform()

	layout := cmakeext.DefaultHostLayout(family)
	if opts.buildLib != "" {
		layout.BuildLib = opts.buildLib
	}
	layout.Inplace = opts.inplace

	python, err := cmakeext.ResolvePython()
	if err != nil {
		return err
	}

	extensions, err := a.manifest.Extensions()
	if err != nil {
		return err
	}

	shim := &cmakeext.BuildExt{
		Extensions: extensions,
		Builder:    a.newBuilder(a.stdout, a.stderr),
		Layout:     layout,
		Python:     python,
		Platform:   family,
		Stdout:     a.stdout,
		Logger:     a.logger,
	}
	return shim.Run(cmd.Context())
}
