package main

import (
	_ "embed"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// buildInfo is what `sigfmt version` reports.
type buildInfo struct {
	Version  string
	Revision string
	Dirty    bool
	Go       string
}

func readBuildInfo() buildInfo {
	bi := buildInfo{Version: strings.TrimSpace(embeddedVersion), Go: runtime.Version()}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		bi.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				bi.Revision = s.Value[:7]
			}
		case "vcs.modified":
			bi.Dirty = s.Value == "true"
		}
	}
	return bi
}

// String renders e.g. "sigfmt 0.1.0 (abc1234-dirty, go1.25.3)".
func (bi buildInfo) String() string {
	var extra []string
	if bi.Revision != "" {
		rev := bi.Revision
		if bi.Dirty {
			rev += "-dirty"
		}
		extra = append(extra, rev)
	}
	extra = append(extra, bi.Go)
	return fmt.Sprintf("sigfmt %s (%s)", bi.Version, strings.Join(extra, ", "))
}

// Version returns the version string.
func Version() string {
	return readBuildInfo().String()
}
