package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteArtifactCreatesRunnableStub(t *testing.T) {
	dir := t.TempDir()
	path := WriteArtifact(t, dir, "0.8.4")

	if path != filepath.Join(dir, "solc-0.8.4") {
		t.Fatalf("unexpected path %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o775 {
		t.Fatalf("expected mode 0775, got %#o", info.Mode().Perm())
	}

	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	if strings.TrimSpace(string(out)) != "solc 0.8.4 --version" {
		t.Fatalf("unexpected stub output %q", out)
	}
}

func TestWritePointer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "global-version")
	WritePointer(t, path, "0.7.6")

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pointer: %v", err)
	}
	if string(raw) != "0.7.6" {
		t.Fatalf("unexpected pointer %q", raw)
	}
}

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, body
}

func TestReleaseHostServesListing(t *testing.T) {
	h := NewReleaseHost(t, "linux-amd64", "0.8.4", "0.7.6")

	status, body := get(t, h.URL+"/linux-amd64/list.json")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var doc struct {
		Releases map[string]string `json:"releases"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if doc.Releases["0.8.4"] != "solc-linux-amd64-v0.8.4" || len(doc.Releases) != 2 {
		t.Fatalf("unexpected releases %#v", doc.Releases)
	}
}

func TestReleaseHostServesArtifacts(t *testing.T) {
	h := NewReleaseHost(t, "linux-amd64", "0.8.4")

	status, body := get(t, h.URL+"/linux-amd64/"+h.ArtifactName("0.8.4"))
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if string(body) != string(StubScript("0.8.4")) {
		t.Fatalf("unexpected artifact body %q", body)
	}

	if status, _ := get(t, h.URL+"/linux-amd64/solc-linux-amd64-v9.9.9"); status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown artifact, got %d", status)
	}
	if status, _ := get(t, h.URL+"/macosx-amd64/list.json"); status != http.StatusNotFound {
		t.Fatalf("expected 404 for other platform, got %d", status)
	}

	want := []string{
		"/linux-amd64/solc-linux-amd64-v0.8.4",
		"/linux-amd64/solc-linux-amd64-v9.9.9",
		"/macosx-amd64/list.json",
	}
	if got := h.Requests(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected requests %v", got)
	}
}
