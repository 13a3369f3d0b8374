// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/nscolor/lib/hct"
	"github.com/bureau-foundation/nscolor/lib/material"
	"github.com/bureau-foundation/nscolor/lib/scheme"
)

// Theme defines the chrome colors drawn around namespace output:
// headers, borders, secondary text, and selection.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Accent highlights values that belong to the namespace.
	Accent lipgloss.Color
}

// DefaultTheme is the fallback when no namespace colors the output.
// Designed for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	Accent: lipgloss.Color("75"), // blue
}

// ThemeFor derives a theme from m's tonal-spot scheme with the
// namespace color as its primary palette.
func ThemeFor(m material.Material, dark bool) Theme {
	colors := material.Format(m, scheme.Build(scheme.SourceAsPrimary(scheme.NewTonalSpot), dark, 0))
	return Theme{
		NormalText: lipglossColor(colors.OnSurface()),
		FaintText:  lipglossColor(colors.OnSurfaceVariant()),

		SelectedBackground: lipglossColor(colors.PrimaryContainer()),
		SelectedForeground: lipglossColor(colors.OnSurface()),

		HeaderForeground: lipglossColor(colors.Primary()),
		BorderColor:      lipglossColor(colors.Outline()),
		HelpText:         lipglossColor(colors.Outline()),

		Accent: lipglossColor(m.Color()),
	}
}

func lipglossColor(color hct.Color) lipgloss.Color {
	return lipgloss.Color(color.Hex())
}
