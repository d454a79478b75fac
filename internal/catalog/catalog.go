// Package catalog fetches the list of solc releases published for a platform.
package catalog

import (
	"sort"
	"strings"
)

// Catalog is the decoded list.json document for one platform.
type Catalog struct {
	// Releases maps a version identifier to its artifact filename.
	Releases      map[string]string `json:"releases"`
	Builds        []Build           `json:"builds"`
	LatestRelease string            `json:"latestRelease"`
}

// Build describes a single published artifact.
type Build struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	SHA256  string `json:"sha256"`
}

// Has reports whether version is published.
func (c Catalog) Has(version string) bool {
	_, ok := c.Releases[version]
	return ok
}

// Artifact returns the artifact filename for version.
func (c Catalog) Artifact(version string) (string, bool) {
	artifact, ok := c.Releases[version]
	return artifact, ok
}

// Versions returns the release identifiers in lexical order.
func (c Catalog) Versions() []string {
	out := make([]string, 0, len(c.Releases))
	for v := range c.Releases {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// SHA256 returns the published hex digest of the release artifact, if the catalog has one.
func (c Catalog) SHA256(version string) (string, bool) {
	artifact, ok := c.Releases[version]
	if !ok {
		return "", false
	}
	for _, b := range c.Builds {
		if b.Path != artifact {
			continue
		}
		digest := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(b.SHA256), "0x"))
		if digest == "" {
			return "", false
		}
		return digest, true
	}
	return "", false
}
