//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified.
var Default = Build

// Build compiles the mlir-setup binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/mlir-setup", "./cmd/mlir-setup")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// BuildExt builds the native extension in place using the freshly built shim.
func BuildExt() error {
	mg.Deps(Build)
	return sh.RunV("./bin/mlir-setup", "build_ext", "--inplace")
}

// Clean removes the shim binary. CMake's own output is left alone.
func Clean() error {
	return sh.Rm("bin")
}
