package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/conn-castle/solc-select/internal/config"
	"github.com/conn-castle/solc-select/internal/shim"
	"github.com/conn-castle/solc-select/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// execSystem records the exec instead of replacing the test process.
type execSystem struct {
	shim.RealSystem
	path string
	args []string
	err  error
}

func (s *execSystem) ExecBinary(path string, args []string, _ []string, _ func(int)) error {
	s.path = path
	s.args = args
	return s.err
}

func setup(t *testing.T, sys shim.System) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv(shim.EnvVersionOverride, "")

	origPaths, origSystem := resolvePaths, newSystem
	t.Cleanup(func() { resolvePaths, newSystem = origPaths, origSystem })
	resolvePaths = func() (config.Paths, error) { return config.DefaultPaths(root), nil }
	newSystem = func() shim.System { return sys }
	return root
}

func TestRunMainDispatches(t *testing.T) {
	sys := &execSystem{}
	root := setup(t, sys)
	paths := config.DefaultPaths(root)
	if err := os.MkdirAll(paths.ArtifactsDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	artifact := testutil.WriteArtifact(t, paths.ArtifactsDir, "0.8.4")
	testutil.WritePointer(t, paths.GlobalVersionPath, "0.8.4")

	var stderr bytes.Buffer
	exited := false
	runMain([]string{"solc", "--bin", "Token.sol"}, &stderr, func(int) { exited = true })

	if exited {
		t.Fatalf("unexpected exit, stderr=%q", stderr.String())
	}
	if sys.path != artifact {
		t.Fatalf("expected exec of %s, got %s", artifact, sys.path)
	}
	if strings.Join(sys.args, " ") != artifact+" --bin Token.sol" {
		t.Fatalf("unexpected args: %#v", sys.args)
	}
}

func TestRunMainNoActiveVersion(t *testing.T) {
	setup(t, &execSystem{})

	var stderr bytes.Buffer
	code := 0
	runMain([]string{"solc"}, &stderr, func(c int) { code = c })

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no solc version selected") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunMainPathFailure(t *testing.T) {
	setup(t, &execSystem{})
	resolvePaths = func() (config.Paths, error) { return config.Paths{}, errors.New("no home") }

	var stderr bytes.Buffer
	code := 0
	runMain([]string{"solc"}, &stderr, func(c int) { code = c })

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if strings.TrimSpace(stderr.String()) != "no home" {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunMainExecFailure(t *testing.T) {
	sys := &execSystem{err: errors.New("exec format error")}
	paths := config.DefaultPaths(setup(t, sys))
	if err := os.MkdirAll(paths.ArtifactsDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	testutil.WriteArtifact(t, paths.ArtifactsDir, "0.8.4")
	testutil.WritePointer(t, paths.GlobalVersionPath, "0.8.4")

	var stderr bytes.Buffer
	code := 0
	runMain([]string{"solc"}, &stderr, func(c int) { code = c })

	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "exec format error") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}
