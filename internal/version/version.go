// Package version exposes the build version of the verscrape binary itself.
package version

import "runtime/debug"

// version is set via -ldflags at release build time. When left empty the
// module version from embedded build info is used instead.
var version = ""

// GetVersion returns the binary version without a "v" prefix.
func GetVersion() string {
	if version != "" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "0.0.0-dev"
	}
	v := info.Main.Version
	if v[0] == 'v' {
		v = v[1:]
	}
	return v
}
