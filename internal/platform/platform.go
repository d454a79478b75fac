// Package platform maps the host operating system to the platform key used by the
// remote solc release catalog.
package platform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/conn-castle/solc-select/internal/messages"
)

// Key is a catalog-side platform identifier such as "linux-amd64".
type Key string

// Platform keys published by binaries.soliditylang.org.
const (
	Linux Key = "linux-amd64"
	MacOS Key = "macosx-amd64"
)

// ErrUnsupported is returned for host operating systems without published builds.
var ErrUnsupported = errors.New("unsupported platform")

var goos = runtime.GOOS

// Resolve returns the catalog key for the running host.
func Resolve() (Key, error) {
	return Check(goos)
}

// Check maps a GOOS value to its catalog key.
func Check(osName string) (Key, error) {
	switch osName {
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	default:
		return "", fmt.Errorf(messages.PlatformUnsupportedOSFmt, ErrUnsupported, osName)
	}
}

func (k Key) String() string {
	return string(k)
}
