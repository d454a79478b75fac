// Package switcher changes the globally active solc version.
package switcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/conn-castle/solc-select/internal/catalog"
	"github.com/conn-castle/solc-select/internal/messages"
)

// Outcome is the result of a switch request.
type Outcome int

const (
	// Switched means the pointer now names the requested version.
	Switched Outcome = iota
	// NotInstalled means the version is published but not installed locally.
	NotInstalled
	// Unknown means the version is neither installed nor published.
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Switched:
		return "switched"
	case NotInstalled:
		return "not-installed"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Installed lists locally installed versions.
type Installed interface {
	InstalledVersions() ([]string, error)
}

// Pointer persists the active version.
type Pointer interface {
	Write(version string) error
}

// Catalog fetches the remote release list.
type Catalog interface {
	Fetch(ctx context.Context) (catalog.Catalog, error)
}

// Switcher validates a version locally first and only consults the network when the
// version is not installed.
type Switcher struct {
	Installed Installed
	Pointer   Pointer
	Catalog   Catalog
}

// New returns a Switcher.
func New(installed Installed, pointer Pointer, cat Catalog) *Switcher {
	return &Switcher{Installed: installed, Pointer: pointer, Catalog: cat}
}

// Switch makes v the active version if it is installed.
// The pointer is written only when the outcome is Switched.
func (s *Switcher) Switch(ctx context.Context, v string) (Outcome, error) {
	installed, err := s.Installed.InstalledVersions()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Unknown, fmt.Errorf(messages.SwitcherQueryInstalledFmt, err)
	}
	if slices.Contains(installed, v) {
		if err := s.Pointer.Write(v); err != nil {
			return Unknown, fmt.Errorf(messages.SwitcherWritePointerFmt, v, err)
		}
		return Switched, nil
	}

	cat, err := s.Catalog.Fetch(ctx)
	if err != nil {
		return Unknown, err
	}
	if cat.Has(v) {
		return NotInstalled, nil
	}
	return Unknown, nil
}
