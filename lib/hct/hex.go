// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex formats the RGB channels of a packed color as lowercase
// "#rrggbb". Alpha is dropped.
func Hex(argb uint32) string {
	return toColorful(argb).Hex()
}

// ParseHex parses "#rgb" or "#rrggbb" (case-insensitive, "#" required)
// into an opaque packed color.
func ParseHex(s string) (uint32, error) {
	parsed, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing hex color %q: %w", s, err)
	}
	red, green, blue := parsed.RGB255()
	return ARGBFromRGB(red, green, blue), nil
}

// ParseHexColor parses a hex string into a Color with measured
// coordinates.
func ParseHexColor(s string) (Color, error) {
	argb, err := ParseHex(s)
	if err != nil {
		return Color{}, err
	}
	return FromARGB(argb), nil
}

func toColorful(argb uint32) colorful.Color {
	return colorful.Color{
		R: float64(Red(argb)) / 255,
		G: float64(Green(argb)) / 255,
		B: float64(Blue(argb)) / 255,
	}
}
