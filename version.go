package usdx

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of the usdx library.
const Version = "0.3.0"

// Set with -ldflags "-X github.com/simonhull/usdx.gitCommit=..." at build time.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// BuildInfo describes the library build a tool is linked against.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetBuildInfo returns the library version plus whatever the linker
// stamped in. Unstamped fields read "unknown".
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("usdx %s (commit %s, built %s, %s)", b.Version, b.GitCommit, b.BuildTime, b.GoVersion)
}
