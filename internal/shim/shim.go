// Package shim implements the solc dispatcher: it resolves the active compiler artifact
// and replaces the current process with it.
package shim

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/store"
)

// EnvVersionOverride selects a version for a single invocation without touching the pointer.
const EnvVersionOverride = "SOLC_VERSION"

var (
	// ErrNoActiveVersion is returned when no version is selected and no override is set.
	ErrNoActiveVersion = errors.New(messages.ShimNoActiveVersion)
	// ErrDispatched signals that execution has been handed off to the compiler.
	ErrDispatched = errors.New(messages.ShimDispatched)
)

// Paths locates the files the dispatcher reads.
type Paths struct {
	ArtifactsDir      string
	GlobalVersionPath string
}

// Run resolves the active version and execs its artifact with args[1:].
// On success with a real System it never returns; a System whose ExecBinary returns nil
// yields ErrDispatched.
func Run(sys System, paths Paths, args []string, exit func(int)) error {
	if sys == nil {
		return errors.New(messages.ShimSystemRequired)
	}
	if len(args) == 0 {
		return errors.New(messages.ShimArgv0Required)
	}
	if exit == nil {
		return errors.New(messages.ShimExitHandlerRequired)
	}

	v, err := resolveVersion(sys, paths.GlobalVersionPath)
	if err != nil {
		return err
	}

	path := filepath.Join(paths.ArtifactsDir, store.ArtifactName(v))
	if _, err := sys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(messages.ShimArtifactMissingFmt, v, path, v)
		}
		return fmt.Errorf(messages.ShimCheckArtifactFmt, path, err)
	}

	execArgs := append([]string{path}, args[1:]...)
	if err := sys.ExecBinary(path, execArgs, sys.Environ(), exit); err != nil {
		return fmt.Errorf(messages.ShimExecFailedFmt, path, err)
	}
	return ErrDispatched
}

// resolveVersion returns the override when set, else the pointer contents.
func resolveVersion(sys System, pointerPath string) (string, error) {
	if override := strings.TrimSpace(sys.Getenv(EnvVersionOverride)); override != "" {
		if strings.ContainsAny(override, `/\ `) || override == "." || override == ".." {
			return "", fmt.Errorf(messages.ShimInvalidOverrideFmt, EnvVersionOverride, override)
		}
		return override, nil
	}

	data, err := sys.ReadFile(pointerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoActiveVersion
		}
		return "", fmt.Errorf(messages.PointerReadFmt, pointerPath, err)
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", ErrNoActiveVersion
	}
	return v, nil
}
