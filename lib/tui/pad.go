// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PadRight pads styled text with spaces to width display columns,
// ignoring escape sequences. Text wider than width is truncated with an
// ellipsis.
func PadRight(styled string, width int) string {
	if width <= 0 {
		return ""
	}
	textWidth := ansi.StringWidth(styled)
	if textWidth > width {
		return ansi.Truncate(styled, width, "…")
	}
	return styled + strings.Repeat(" ", width-textWidth)
}

// MaxWidth returns the widest display width among lines.
func MaxWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}
