// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// ColorAlgorithm identifies the derivation: 32-bit FNV-1a seeding an
// HCT sample with 5 precision bits per draw.
const ColorAlgorithm = "fnv1a32-hct-p5"

// Info returns a formatted version string suitable for --version output.
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s\n  Color algorithm: %s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH, ColorAlgorithm)
}

// Short returns just the version number.
func Short() string {
	return Version
}

// Commit returns the git commit SHA.
func Commit() string {
	return GitCommit
}

// Print writes "binary Info" to w, or "binary Full" when detailed.
func Print(w io.Writer, binary string, detailed bool) error {
	text := Info()
	if detailed {
		text = Full()
	}
	_, err := fmt.Fprintf(w, "%s %s\n", binary, text)
	return err
}
