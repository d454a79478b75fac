// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// StubScript returns a shell script that prints "solc <version>" followed by its arguments.
func StubScript(version string) []byte {
	return []byte(fmt.Sprintf("#!/bin/sh\necho solc %s \"$@\"\n", version))
}

// WriteArtifact writes an executable solc-<version> stub into dir and returns its path.
// t is the active test; dir must exist.
func WriteArtifact(t *testing.T, dir string, version string) string {
	t.Helper()
	path := filepath.Join(dir, "solc-"+version)
	if err := os.WriteFile(path, StubScript(version), 0o775); err != nil {
		t.Fatalf("write artifact stub: %v", err)
	}
	return path
}

// WritePointer stores version as the active version at path.
func WritePointer(t *testing.T, path string, version string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir pointer dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(version), 0o644); err != nil {
		t.Fatalf("write pointer: %v", err)
	}
}

// ReleaseHost is a fake release host serving list.json and stub artifacts for one platform.
type ReleaseHost struct {
	*httptest.Server

	platform string
	mu       sync.Mutex
	releases map[string]string
	requests []string
}

// NewReleaseHost starts a host publishing versions under platform; it is closed with the test.
func NewReleaseHost(t *testing.T, platform string, versions ...string) *ReleaseHost {
	t.Helper()
	h := &ReleaseHost{platform: platform, releases: make(map[string]string, len(versions))}
	for _, v := range versions {
		h.releases[v] = h.ArtifactName(v)
	}
	h.Server = httptest.NewServer(http.HandlerFunc(h.serve))
	t.Cleanup(h.Close)
	return h
}

// ArtifactName is the published file name for version.
func (h *ReleaseHost) ArtifactName(version string) string {
	return "solc-" + h.platform + "-v" + version
}

// Requests returns the paths requested so far.
func (h *ReleaseHost) Requests() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.requests...)
}

func (h *ReleaseHost) serve(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, r.URL.Path)

	prefix := "/" + h.platform + "/"
	name, ok := strings.CutPrefix(r.URL.Path, prefix)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if name == "list.json" {
		entries := make([]string, 0, len(h.releases))
		for v, artifact := range h.releases {
			entries = append(entries, fmt.Sprintf("%q:%q", v, artifact))
		}
		_, _ = fmt.Fprintf(w, `{"releases":{%s}}`, strings.Join(entries, ","))
		return
	}
	for v, artifact := range h.releases {
		if artifact == name {
			_, _ = w.Write(StubScript(v))
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}
