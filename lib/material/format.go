// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/nscolor/lib/hct"
)

// Formatter presents a color as some other type.
type Formatter[T any] func(hct.Color) T

// Format applies formatter to the material's color.
func Format[T any](m Material, formatter Formatter[T]) T {
	return formatter(m.color)
}

// Identity returns the color itself.
var Identity Formatter[hct.Color] = func(color hct.Color) hct.Color { return color }

// Hex formats the color as lowercase "#rrggbb".
var Hex Formatter[string] = hct.Color.Hex

// ARGB returns the packed 0xAARRGGBB value.
var ARGB Formatter[uint32] = hct.Color.ARGB

// Style returns a formatter producing a lipgloss style with the color as
// foreground. A nil renderer uses lipgloss's default renderer.
func Style(renderer *lipgloss.Renderer) Formatter[lipgloss.Style] {
	return func(color hct.Color) lipgloss.Style {
		style := lipgloss.NewStyle()
		if renderer != nil {
			style = renderer.NewStyle()
		}
		return style.Foreground(lipgloss.Color(color.Hex()))
	}
}

// Custom adapts any function into a Formatter.
func Custom[T any](fn func(hct.Color) T) Formatter[T] {
	return Formatter[T](fn)
}
