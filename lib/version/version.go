// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags.
var (
	GitCommit = ""
	GitDirty  = ""
	BuildTime = ""
	Version   = "0.1.0-dev"
)

// stamp is the resolved build identity.
type stamp struct {
	commit string
	dirty  bool
	time   string
}

func resolve() stamp {
	s := stamp{commit: GitCommit, dirty: GitDirty == "true", time: BuildTime}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if s.commit == "" && len(setting.Value) >= 7 {
					s.commit = setting.Value[:7]
				}
			case "vcs.modified":
				if GitDirty == "" {
					s.dirty = setting.Value == "true"
				}
			case "vcs.time":
				if s.time == "" {
					s.time = setting.Value
				}
			}
		}
	}
	if s.commit == "" {
		s.commit = "unknown"
	}
	if s.time == "" {
		s.time = "unknown"
	}
	return s
}

// Info returns "version (commit[-dirty], time)".
func Info() string {
	s := resolve()
	dirty := ""
	if s.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, s.commit, dirty, s.time)
}

// Full adds the Go version and platform to Info.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
