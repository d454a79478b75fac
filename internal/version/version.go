// Package version orders solc version identifiers for display.
//
// Identifiers are opaque everywhere else; the numeric decomposition here is only
// used to sort and is never used for equality.
package version

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/conn-castle/solc-select/internal/messages"
)

// ErrInvalid reports an identifier that is not three dot-separated non-negative integers.
var ErrInvalid = errors.New("invalid version")

// Parse converts "X.Y.Z" into its numeric components.
func Parse(raw string) ([3]uint64, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return [3]uint64{}, fmt.Errorf(messages.VersionInvalidFmt, ErrInvalid, raw)
	}
	var out [3]uint64
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return [3]uint64{}, fmt.Errorf(messages.VersionInvalidSegmentFmt, ErrInvalid, raw, part, err)
		}
		out[i] = value
	}
	return out, nil
}

// Compare returns -1 if a < b, 0 if a == b, and 1 if a > b.
func Compare(a [3]uint64, b [3]uint64) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// SortDescending sorts versions newest first in place.
// It fails without reordering when any identifier does not parse.
func SortDescending(versions []string) error {
	parsed := make(map[string][3]uint64, len(versions))
	for _, v := range versions {
		p, err := Parse(v)
		if err != nil {
			return err
		}
		parsed[v] = p
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(parsed[versions[i]], parsed[versions[j]]) > 0
	})
	return nil
}
