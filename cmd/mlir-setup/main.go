package main

import (
	"fmt"
	"os"

	"github.com/mlir-bindings/cmakeext"
)

func main() {
	manifest, err := cmakeext.LoadManifest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load setup manifest: %v\n", err)
		os.Exit(1)
	}

	a := newApp(manifest)
	if err := a.rootCommand().Execute(); err != nil {
		fmt.Fprintln(a.stderr, renderError(err))
		os.Exit(exitCode(err))
	}
}
