package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/solc-select/internal/messages"
)

// DefaultDirName is the state directory created under the user's home.
const DefaultDirName = ".solc-select"

// Paths holds resolved paths for solc-select state.
type Paths struct {
	Root              string
	ArtifactsDir      string
	GlobalVersionPath string
	ConfigPath        string
}

// DefaultPaths returns the state layout under root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:              root,
		ArtifactsDir:      filepath.Join(root, "artifacts"),
		GlobalVersionPath: filepath.Join(root, "global-version"),
		ConfigPath:        filepath.Join(root, "config.toml"),
	}
}

// ResolvePaths honors SOLC_SELECT_DIR and otherwise uses ~/.solc-select.
func ResolvePaths(sys System) (Paths, error) {
	if override := strings.TrimSpace(sys.Getenv(EnvDir)); override != "" {
		return DefaultPaths(override), nil
	}
	home, err := sys.HomeDir()
	if err != nil {
		return Paths{}, &Error{Err: fmt.Errorf(messages.ConfigResolveHomeFmt, err)}
	}
	return DefaultPaths(filepath.Join(home, DefaultDirName)), nil
}
