// Package store manages the local directory of installed solc artifacts.
//
// The directory listing is the source of truth: a version is installed exactly when
// an entry named "solc-<version>" exists. There is no manifest.
package store

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conn-castle/solc-select/internal/fslock"
	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/version"
)

// ArtifactPrefix is prepended to the version to form an artifact file name.
const ArtifactPrefix = "solc-"

// ArtifactMode is applied to every installed artifact (rwxrwxr-x).
const ArtifactMode os.FileMode = 0o775

const lockName = ".lock"

var (
	osChmod      = os.Chmod
	osRename     = os.Rename
	osCreateTemp = os.CreateTemp
)

// IOError reports a filesystem failure and the path it happened on.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf(messages.StoreIOErrorFmt, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Store is the artifact directory. Warn, when set, receives one line per directory
// entry that is skipped during listing.
type Store struct {
	Dir  string
	Warn func(msg string)
}

// New returns a Store rooted at dir.
func New(dir string, warn func(msg string)) *Store {
	return &Store{Dir: dir, Warn: warn}
}

// ArtifactDir returns the artifact directory without creating it.
func (s *Store) ArtifactDir() string {
	return s.Dir
}

// ArtifactName returns the file name for version.
func ArtifactName(v string) string {
	return ArtifactPrefix + v
}

// ArtifactPath returns the canonical artifact path for version.
func (s *Store) ArtifactPath(v string) string {
	return filepath.Join(s.Dir, ArtifactName(v))
}

// EnsureDir creates the artifact directory if it is missing.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return &IOError{Op: messages.StoreOpCreateDir, Path: s.Dir, Err: err}
	}
	return nil
}

// InstalledVersions lists the versions present in the artifact directory.
// A missing directory is an error; errors.Is(err, fs.ErrNotExist) reports that case.
// Versions are ordered newest first when every entry parses as X.Y.Z, lexically otherwise.
func (s *Store) InstalledVersions() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, &IOError{Op: messages.StoreOpReadDir, Path: s.Dir, Err: err}
	}

	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		// Lock and temp files are hidden.
		if strings.HasPrefix(name, ".") {
			continue
		}
		v, ok := strings.CutPrefix(name, ArtifactPrefix)
		if !ok || v == "" || entry.IsDir() {
			s.warn(fmt.Sprintf(messages.StoreSkipEntryWarnFmt, name, s.Dir))
			continue
		}
		versions = append(versions, v)
	}

	if err := version.SortDescending(versions); err != nil {
		sort.Strings(versions)
	}
	return versions, nil
}

// IsInstalled reports whether version has an artifact in the directory.
func (s *Store) IsInstalled(v string) (bool, error) {
	versions, err := s.InstalledVersions()
	if err != nil {
		return false, err
	}
	for _, installed := range versions {
		if installed == v {
			return true, nil
		}
	}
	return false, nil
}

// WriteArtifact stores the bytes read from r as the executable artifact for version,
// replacing any previous artifact.
func (s *Store) WriteArtifact(v string, r io.Reader) error {
	return s.WriteArtifactVerified(v, r, "")
}

// WriteArtifactVerified is WriteArtifact with an optional SHA-256 check.
// When expectedSHA256 is non-empty and does not match, the previous artifact is kept.
//
// Content is written to a hidden temp file, made executable, then renamed into place,
// so readers never observe a partially written or non-executable artifact.
func (s *Store) WriteArtifactVerified(v string, r io.Reader, expectedSHA256 string) error {
	if err := validateVersion(v); err != nil {
		return err
	}
	if err := s.EnsureDir(); err != nil {
		return err
	}
	dest := s.ArtifactPath(v)

	return fslock.With(filepath.Join(s.Dir, lockName), func() error {
		tmp, err := osCreateTemp(s.Dir, "."+ArtifactName(v)+".tmp-*")
		if err != nil {
			return &IOError{Op: messages.StoreOpCreateTemp, Path: s.Dir, Err: err}
		}
		tmpName := tmp.Name()
		committed := false
		defer func() {
			if !committed {
				_ = os.Remove(tmpName)
			}
		}()

		hasher := sha256.New()
		if _, err := io.Copy(io.MultiWriter(tmp, hasher), r); err != nil {
			_ = tmp.Close()
			return &IOError{Op: messages.StoreOpWrite, Path: dest, Err: err}
		}
		if err := tmp.Sync(); err != nil {
			_ = tmp.Close()
			return &IOError{Op: messages.StoreOpSync, Path: dest, Err: err}
		}
		if err := tmp.Close(); err != nil {
			return &IOError{Op: messages.StoreOpClose, Path: dest, Err: err}
		}

		if expected := strings.ToLower(strings.TrimPrefix(expectedSHA256, "0x")); expected != "" {
			actual := fmt.Sprintf("%x", hasher.Sum(nil))
			if actual != expected {
				return fmt.Errorf(messages.StoreChecksumMismatchFmt, dest, expected, actual)
			}
		}

		if err := osChmod(tmpName, ArtifactMode); err != nil {
			return &IOError{Op: messages.StoreOpChmod, Path: dest, Err: err}
		}
		if err := osRename(tmpName, dest); err != nil {
			return &IOError{Op: messages.StoreOpRename, Path: dest, Err: err}
		}
		committed = true
		return nil
	})
}

func (s *Store) warn(msg string) {
	if s.Warn != nil {
		s.Warn(msg)
	}
}

// validateVersion rejects identifiers that would escape the artifact directory.
func validateVersion(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New(messages.StoreEmptyVersion)
	}
	if strings.ContainsAny(v, `/\`) || v == "." || v == ".." {
		return fmt.Errorf(messages.StoreInvalidVersionFmt, v)
	}
	return nil
}
