// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     version
// Description: Central version and build information
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version of the clipdash release
const Version = "0.3.0"

// Build information, set with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Short returns "clipdash v<version>"
func Short() string {
	return "clipdash v" + Version
}

// Info returns the multi-line version block printed by the version command
func Info() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Short(), GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
