package utils

import (
	"runtime/debug"
	"strings"
)

// version is set with -ldflags "-X github.com/gnomegl/gitscore/internal/utils.version=..."
var version string

// GetVersion returns the build version without a leading "v". Without
// ldflags it falls back to the module version from the build info, and to
// "dev" for local builds.
func GetVersion() string {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		} else {
			v = "dev"
		}
	}
	return strings.TrimPrefix(v, "v")
}
