package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version reports the CLI version. Binaries installed from a tagged
// release carry the module version; anything built from source reports
// the embedded number as a devel build, with the short VCS revision
// appended when the build recorded one.
func Version() string {
	devel := "devel-" + strings.TrimSpace(rawVersion)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key != "vcs.revision" || s.Value == "" {
			continue
		}
		rev := s.Value
		if len(rev) > 7 {
			rev = rev[:7]
		}
		return devel + "+" + rev
	}
	return devel
}
