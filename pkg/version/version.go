// Package version derives the service version from build metadata.
// An -ldflags override wins, then VCS info from debug.BuildInfo, then "dev".
package version

import (
	"fmt"
	"runtime/debug"
)

// AppName appears in version strings, log lines and the health endpoint.
const AppName = "intake"

// commitOverride is set via -ldflags for container builds without a .git
// directory.
var commitOverride string

// GitCommit is the short commit hash, or "dev" when no VCS info is
// available (go test, non-git builds).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return short(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "intake/<commit>" for log lines and user-agent strings.
func Full() string {
	return fmt.Sprintf("%s/%s", AppName, GitCommit)
}
