package toolchain

import (
	"strconv"
	"strings"

	"compilerpaths/util"
)

// Version is a dotted-integer toolchain or SDK version: an ordered tuple of
// non-negative integers such as `16.6.30204.135`.  Versions are totally
// ordered: comparison is lexicographic over components with missing trailing
// components treated as zero, so `14.0` and `14.0.0.0` compare equal.
type Version struct {
	parts []uint64
}

// ParseVersion parses a dot-separated integer version string.  Every
// component must be a non-negative integer; an empty string or a
// non-numeric component is rejected.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, &InvalidVersionFormatError{Input: s}
	}

	fields := strings.Split(s, ".")
	parts := make([]uint64, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return Version{}, &InvalidVersionFormatError{Input: s}
		}

		parts[i] = n
	}

	return Version{parts: parts}, nil
}

// MustParseVersion parses a version string known to be valid.  It panics on
// a malformed input and is intended for fixed version literals.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic("failed to parse version string: " + err.Error())
	}

	return v
}

// Compare returns -1, 0, or 1 as v orders before, equal to, or after other.
func (v Version) Compare(other Version) int {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}

	for i := 0; i < n; i++ {
		a, b := v.component(i), other.component(i)

		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	return 0
}

// Equal reports whether the two versions compare equal.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// component returns the i-th version component, treating components past the
// end of the parsed tuple as zero.
func (v Version) component(i int) uint64 {
	if i < len(v.parts) {
		return v.parts[i]
	}

	return 0
}

// String returns the version in its dotted form.
func (v Version) String() string {
	return strings.Join(util.Map(v.parts, func(p uint64) string {
		return strconv.FormatUint(p, 10)
	}), ".")
}
