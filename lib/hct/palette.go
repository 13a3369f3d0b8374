// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "math"

// TonalPalette is a family of colors sharing one hue and chroma,
// addressed by tone.
type TonalPalette struct {
	hue      float64
	chroma   float64
	keyColor Color
}

// PaletteFromColor returns the palette with color's hue and chroma,
// keyed on color itself.
func PaletteFromColor(color Color) TonalPalette {
	return TonalPalette{hue: color.hue, chroma: color.chroma, keyColor: color}
}

// PaletteFromHueAndChroma returns the palette for hue and chroma. Its
// key color is the color nearest tone 50 that actually reaches the
// requested chroma (or comes closest to it).
func PaletteFromHueAndChroma(hue, chroma float64) TonalPalette {
	return TonalPalette{hue: hue, chroma: chroma, keyColor: keyColorFor(hue, chroma)}
}

// keyColorFor searches outward from tone 50 for the tone whose solved
// color measures closest to the requested chroma.
func keyColorFor(hue, chroma float64) Color {
	const startTone = 50.0
	best := FromARGB(Solve(hue, chroma, startTone))
	bestDelta := math.Abs(best.chroma - chroma)
	for delta := 1.0; delta < 50; delta++ {
		if math.Round(chroma) == math.Round(best.chroma) {
			return best
		}
		for _, tone := range [2]float64{startTone + delta, startTone - delta} {
			candidate := FromARGB(Solve(hue, chroma, tone))
			if candidateDelta := math.Abs(candidate.chroma - chroma); candidateDelta < bestDelta {
				bestDelta = candidateDelta
				best = candidate
			}
		}
	}
	return best
}

// Hue of every color in the palette.
func (p TonalPalette) Hue() float64 { return p.hue }

// Chroma requested for every color in the palette. Colors at extreme
// tones fall short of it where sRGB cannot reach.
func (p TonalPalette) Chroma() float64 { return p.chroma }

// KeyColor is the palette's representative color.
func (p TonalPalette) KeyColor() Color { return p.keyColor }

// Tone returns the packed palette color at tone.
func (p TonalPalette) Tone(tone float64) uint32 {
	return Solve(p.hue, p.chroma, tone)
}

// Color returns the palette color at tone as a Color.
func (p TonalPalette) Color(tone float64) Color {
	return From(p.hue, p.chroma, tone)
}
