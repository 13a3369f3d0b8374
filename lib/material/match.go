// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package material

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/nscolor/lib/hct"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Match clamps color's tone into [ToneMin, ToneMax]. Hue and chroma are
// kept exactly; a color already inside the band is returned unchanged.
func Match(color hct.Color) hct.Color {
	switch tone := color.Tone(); {
	case tone < ToneMin:
		return color.WithTone(ToneMin)
	case tone > ToneMax:
		return color.WithTone(ToneMax)
	default:
		return color
	}
}

// MatchHex parses a "#rrggbb" or "#rgb" color and clamps it with Match.
func MatchHex(s string) (hct.Color, error) {
	color, err := hct.ParseHexColor(s)
	if err != nil {
		return hct.Color{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return Match(color), nil
}

// InBand reports whether color's tone is inside the vivid band and its
// chroma reaches MinChroma.
func InBand(color hct.Color) bool {
	return color.Tone() >= ToneMin && color.Tone() <= ToneMax && color.Chroma() >= MinChroma
}
