package utils

import (
	"runtime/debug"
	"strings"
)

// version is injected with -ldflags "-X github.com/gnomegl/gitfill/internal/utils.version=..."
var version string

// GetVersion reports the build version without a leading "v", falling back
// to the module version recorded in the binary and then to "dev".
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
