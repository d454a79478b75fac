// Package install downloads solc releases from the remote catalog into the local store.
package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"time"

	"github.com/conn-castle/solc-select/internal/catalog"
	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/version"
)

// ErrNothingRequested is returned by Install when no versions are given.
var ErrNothingRequested = errors.New(messages.InstallNothingRequested)

var retrySleep = time.Sleep

const retryBackoff = 250 * time.Millisecond

// Source is the remote side of an install.
type Source interface {
	Fetch(ctx context.Context) (catalog.Catalog, error)
	Download(ctx context.Context, artifact string, dest io.Writer) (int64, error)
}

// ArtifactStore persists downloaded artifacts.
type ArtifactStore interface {
	EnsureDir() error
	WriteArtifactVerified(version string, r io.Reader, expectedSHA256 string) error
}

// Error wraps a network or filesystem failure during an install.
// Version is empty when the failure is not tied to a single release.
type Error struct {
	Version string
	Err     error
}

func (e *Error) Error() string {
	if e.Version == "" {
		return fmt.Sprintf(messages.InstallErrorFmt, e.Err)
	}
	return fmt.Sprintf(messages.InstallVersionErrorFmt, e.Version, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures an Installer.
type Options struct {
	Source Source
	Store  ArtifactStore
	// Out receives per-version progress lines.
	Out io.Writer
	// Warn receives requested versions that the catalog does not publish.
	Warn func(msg string)
	// Retries is the number of extra attempts for a transient download failure.
	Retries int
}

// Installer reconciles requested versions with the remote catalog and the store.
type Installer struct {
	source  Source
	store   ArtifactStore
	out     io.Writer
	warn    func(msg string)
	retries int
}

// Result lists what an Install call did.
type Result struct {
	Installed []string
	// Unmatched holds requested identifiers absent from the catalog.
	Unmatched []string
}

// New returns an Installer for opts.
func New(opts Options) *Installer {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	return &Installer{
		source:  opts.Source,
		store:   opts.Store,
		out:     out,
		warn:    opts.Warn,
		retries: retries,
	}
}

// Available returns every published version, newest first.
// A catalog key that is not MAJOR.MINOR.PATCH is a fatal error.
func (i *Installer) Available(ctx context.Context) ([]string, error) {
	cat, err := i.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	versions := cat.Versions()
	if err := version.SortDescending(versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// Install downloads every catalog release named in requested, or all of them when
// requested contains "all". Existing artifacts are overwritten.
func (i *Installer) Install(ctx context.Context, requested []string) (Result, error) {
	if len(requested) == 0 {
		return Result{}, ErrNothingRequested
	}
	if err := i.store.EnsureDir(); err != nil {
		return Result{}, &Error{Err: err}
	}
	cat, err := i.source.Fetch(ctx)
	if err != nil {
		return Result{}, &Error{Err: err}
	}

	all := slices.Contains(requested, messages.InstallAllSentinel)
	var result Result
	seen := make(map[string]bool, len(requested))
	for _, r := range requested {
		if r == messages.InstallAllSentinel || seen[r] {
			continue
		}
		seen[r] = true
		if !cat.Has(r) {
			result.Unmatched = append(result.Unmatched, r)
			i.emitWarning(fmt.Sprintf(messages.InstallUnmatchedWarnFmt, r))
		}
	}

	for _, v := range displayOrder(cat.Versions()) {
		if !all && !slices.Contains(requested, v) {
			continue
		}
		if err := i.installOne(ctx, cat, v); err != nil {
			return result, err
		}
		result.Installed = append(result.Installed, v)
	}
	return result, nil
}

// installOne downloads a single release and hands it to the store.
func (i *Installer) installOne(ctx context.Context, cat catalog.Catalog, v string) error {
	artifact, _ := cat.Artifact(v)
	_, _ = fmt.Fprintf(i.out, messages.InstallInstallingFmt, v)

	var buf bytes.Buffer
	for attempt := 0; ; attempt++ {
		buf.Reset()
		_, err := i.source.Download(ctx, artifact, &buf)
		if err == nil {
			break
		}
		var netErr *catalog.NetworkError
		if attempt < i.retries && errors.As(err, &netErr) && netErr.Retryable() {
			retrySleep(retryBackoff)
			continue
		}
		return &Error{Version: v, Err: err}
	}

	digest, _ := cat.SHA256(v)
	if err := i.store.WriteArtifactVerified(v, &buf, digest); err != nil {
		return &Error{Version: v, Err: err}
	}
	_, _ = fmt.Fprintf(i.out, messages.InstallInstalledFmt, v)
	return nil
}

func (i *Installer) emitWarning(msg string) {
	if i.warn != nil {
		i.warn(msg)
	}
}

// displayOrder sorts newest first, falling back to lexical order for odd identifiers.
func displayOrder(versions []string) []string {
	if err := version.SortDescending(versions); err != nil {
		sort.Strings(versions)
	}
	return versions
}
