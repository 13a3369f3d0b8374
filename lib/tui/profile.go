// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ProfileAuto defers profile detection to the output terminal.
const ProfileAuto = "auto"

// ProfileNames lists the accepted profile names.
var ProfileNames = []string{ProfileAuto, "truecolor", "ansi256", "ansi", "ascii"}

// ParseProfile returns the termenv profile named name. ok is false for
// "auto", which has no fixed profile.
func ParseProfile(name string) (profile termenv.Profile, ok bool, err error) {
	switch name {
	case ProfileAuto, "":
		return termenv.Ascii, false, nil
	case "truecolor":
		return termenv.TrueColor, true, nil
	case "ansi256":
		return termenv.ANSI256, true, nil
	case "ansi":
		return termenv.ANSI, true, nil
	case "ascii":
		return termenv.Ascii, true, nil
	default:
		return termenv.Ascii, false, fmt.Errorf("unknown color profile %q (want one of auto, truecolor, ansi256, ansi, ascii)", name)
	}
}

// NewRenderer returns a lipgloss renderer writing to output with the
// named color profile. "auto" detects the profile from output.
func NewRenderer(output io.Writer, profileName string) (*lipgloss.Renderer, error) {
	profile, fixed, err := ParseProfile(profileName)
	if err != nil {
		return nil, err
	}
	renderer := lipgloss.NewRenderer(output)
	if fixed {
		renderer.SetColorProfile(profile)
	}
	return renderer, nil
}
