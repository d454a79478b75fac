// Package pointer persists the globally active solc version in a single file.
package pointer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/solc-select/internal/fslock"
	"github.com/conn-castle/solc-select/internal/messages"
)

// ErrNoActiveVersion reports that no version has been selected yet.
// It matches fs.ErrNotExist under errors.Is.
var ErrNoActiveVersion = noActiveError{}

type noActiveError struct{}

func (noActiveError) Error() string { return messages.PointerNoActive }

func (noActiveError) Is(target error) bool { return target == fs.ErrNotExist }

var (
	osCreateTemp = os.CreateTemp
	osRename     = os.Rename
)

// File is the active version pointer file.
// The stored value is not validated against installed versions on read.
type File struct {
	Path string
}

// New returns the pointer stored at path.
func New(path string) *File {
	return &File{Path: path}
}

// Read returns the trimmed active version.
// A missing or empty file yields ErrNoActiveVersion.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoActiveVersion
		}
		return "", fmt.Errorf(messages.PointerReadFmt, f.Path, err)
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", ErrNoActiveVersion
	}
	return v, nil
}

// Write replaces the file content with exactly version.
func (f *File) Write(version string) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.PointerCreateDirFmt, f.Path, err)
	}
	return fslock.With(f.Path+".lock", func() error {
		return f.replace(version)
	})
}

// replace writes through a temp file and rename so the pointer is never half written.
func (f *File) replace(version string) error {
	tmp, err := osCreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.PointerCreateTempFmt, f.Path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(version); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.PointerWriteTempFmt, f.Path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.PointerSyncTempFmt, f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.PointerCloseTempFmt, f.Path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf(messages.PointerWriteTempFmt, f.Path, err)
	}
	if err := osRename(tmpName, f.Path); err != nil {
		return fmt.Errorf(messages.PointerRenameFmt, f.Path, err)
	}
	committed = true
	return nil
}
