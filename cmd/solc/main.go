// Command solc forwards its arguments to the active solc-select compiler.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/conn-castle/solc-select/internal/config"
	"github.com/conn-castle/solc-select/internal/shim"
)

var (
	resolvePaths = func() (config.Paths, error) { return config.ResolvePaths(config.RealSystem{}) }
	newSystem    = func() shim.System { return shim.RealSystem{} }
)

func main() {
	runMain(os.Args, os.Stderr, os.Exit)
}

// runMain execs the active compiler; it only returns when dispatch failed or was simulated.
func runMain(args []string, stderr io.Writer, exit func(int)) {
	paths, err := resolvePaths()
	if err == nil {
		err = shim.Run(newSystem(), shim.Paths{
			ArtifactsDir:      paths.ArtifactsDir,
			GlobalVersionPath: paths.GlobalVersionPath,
		}, args, exit)
	}
	if err == nil || errors.Is(err, shim.ErrDispatched) {
		return
	}
	_, _ = color.New(color.FgRed).Fprintln(stderr, err)
	exit(1)
}
