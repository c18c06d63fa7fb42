// Package semver provides lightweight version-string helpers for scraped
// tool versions. Scraped versions are frequently not strict semver
// (e.g. "1.9", "21.04.0-edge"), so normalization is deliberately lenient.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxVersionLength is the maximum allowed length for a scraped version
// string. This prevents pathological inputs from reaching the regex parser.
const maxVersionLength = 128

var (
	// versionRegex matches dotted numeric versions with an optional "v"
	// prefix and an optional trailing pre-release or build suffix.
	// It captures:
	//   1. Major version
	//   2. (optional) Minor version
	//   3. (optional) Patch version
	//   4. (optional) Suffix (pre-release or build metadata)
	versionRegex = regexp.MustCompile(
		`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?` +
			`(?:[-+.]([0-9A-Za-z\-\.\+]+))?$`,
	)

	// ErrInvalidVersion is returned when a string cannot be interpreted as
	// a version at all.
	ErrInvalidVersion = errors.New("invalid version format")
)

// Version is a loosely parsed tool version.
type Version struct {
	Major  int
	Minor  int
	Patch  int
	Suffix string
}

// String returns the canonical dotted representation without the "v" prefix.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.Suffix != "" {
		sb.WriteByte('-')
		sb.WriteString(v.Suffix)
	}
	return sb.String()
}

// Parse parses a version string leniently. Missing minor/patch components
// default to zero, so "1.9" parses as 1.9.0.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, ErrInvalidVersion
	}
	if len(trimmed) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return Version{}, ErrInvalidVersion
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid major component: %s", ErrInvalidVersion, err.Error())
	}

	var minor, patch int
	if matches[2] != "" {
		if minor, err = strconv.Atoi(matches[2]); err != nil {
			return Version{}, fmt.Errorf("%w: invalid minor component: %s", ErrInvalidVersion, err.Error())
		}
	}
	if matches[3] != "" {
		if patch, err = strconv.Atoi(matches[3]); err != nil {
			return Version{}, fmt.Errorf("%w: invalid patch component: %s", ErrInvalidVersion, err.Error())
		}
	}

	return Version{Major: major, Minor: minor, Patch: patch, Suffix: matches[4]}, nil
}

// Normalize prefixes a scraped version string with "v" for display.
// A string that already carries the prefix is returned unchanged, so
// normalization never produces "vv1.0".
func Normalize(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "v") || strings.HasPrefix(trimmed, "V") {
		return trimmed
	}
	return "v" + trimmed
}

// Compare compares two versions. It returns -1 if v < other, 0 if equal and
// +1 if v > other. Suffixes sort before the bare version ("1.0.0-rc.1" <
// "1.0.0") and are otherwise compared lexically.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	switch {
	case v.Suffix == other.Suffix:
		return 0
	case v.Suffix == "":
		return 1
	case other.Suffix == "":
		return -1
	case v.Suffix < other.Suffix:
		return -1
	default:
		return 1
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
