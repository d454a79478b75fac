package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	root := t.TempDir()
	paths := DefaultPaths(root)

	if paths.Root != root {
		t.Fatalf("expected root %s, got %s", root, paths.Root)
	}
	if paths.ArtifactsDir != filepath.Join(root, "artifacts") {
		t.Fatalf("unexpected artifacts dir: %s", paths.ArtifactsDir)
	}
	if paths.GlobalVersionPath != filepath.Join(root, "global-version") {
		t.Fatalf("unexpected global version path: %s", paths.GlobalVersionPath)
	}
	if paths.ConfigPath != filepath.Join(root, "config.toml") {
		t.Fatalf("unexpected config path: %s", paths.ConfigPath)
	}
}

func TestResolvePathsUsesHome(t *testing.T) {
	sys := &testSystem{
		env:  map[string]string{},
		home: "/home/dev",
	}
	paths, err := ResolvePaths(sys)
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if paths.Root != filepath.Join("/home/dev", ".solc-select") {
		t.Fatalf("unexpected root: %s", paths.Root)
	}
}

func TestResolvePathsOverride(t *testing.T) {
	sys := &testSystem{
		env:     map[string]string{EnvDir: " /opt/solc "},
		homeErr: errors.New("home should not be consulted"),
	}
	paths, err := ResolvePaths(sys)
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if paths.Root != "/opt/solc" {
		t.Fatalf("unexpected root: %s", paths.Root)
	}
}

func TestResolvePathsHomeFailure(t *testing.T) {
	sys := &testSystem{
		env:     map[string]string{},
		homeErr: errors.New("no home"),
	}
	_, err := ResolvePaths(sys)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
}
