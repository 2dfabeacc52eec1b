// Package cmakeext builds CMake-based native Python extension modules.
//
// This package is the Go equivalent of a setuptools build_ext command that
// delegates compilation to CMake. It does not compile anything itself: it
// finds CMake, checks its version where that matters, and runs the configure
// and build phases for every declared extension so that the shared library
// lands where the Python import machinery will look for it.
//
// # Basic Usage
//
//	manifest, err := cmakeext.LoadManifest()
//	if err != nil {
//	    return err
//	}
//	extensions, err := manifest.Extensions()
//	if err != nil {
//	    return err
//	}
//
//	family := cmakeext.DetectPlatform()
//	python, err := cmakeext.ResolvePython()
//	if err != nil {
//	    return err
//	}
//
//	shim := &cmakeext.BuildExt{
//	    Extensions: extensions,
//	    Builder:    cmakeext.NewCmakeBuilder(),
//	    Layout:     cmakeext.DefaultHostLayout(family),
//	    Python:     python,
//	    Platform:   family,
//	}
//	err = shim.Run(ctx)
//
// # Build Flow
//
//  1. Preflight: run "cmake --version" once. A missing tool aborts the whole
//     build with a ToolNotFoundError naming every declared extension.
//  2. Version gate: on Windows only, CMake older than 3.1.0 is rejected.
//  3. For each extension in declaration order: print the output directory,
//     run "cmake . -DCMAKE_LIBRARY_OUTPUT_DIRECTORY=<dir> -DPYTHON_EXECUTABLE=<python>"
//     and then "cmake --build ." inside the extension's source directory.
//
// Any failure stops the build. Nothing is retried and partial output is left
// in place.
package cmakeext
