/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package version reports build metadata for the --version flag.
package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X codeberg.org/orien/cfnsync/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	GoVersion = runtime.Version()
	Platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info returns the multi-line version banner
func Info() string {
	return fmt.Sprintf(`cfn-sync %s
  Git commit: %s
  Build date: %s
  Go version: %s
  Platform:   %s`, Version, GitCommit, BuildDate, GoVersion, Platform)
}

// Short returns just the version string
func Short() string {
	return Version
}
