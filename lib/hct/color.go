// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "fmt"

// ProbeChroma is a chroma beyond anything displayable in sRGB. Solving
// at this chroma returns the most chromatic in-gamut color, whose
// measured chroma is the gamut boundary.
const ProbeChroma = 200

// Color is an immutable HCT color and its packed sRGB value.
//
// The zero Color is transparent black with zero coordinates; use [From]
// or [FromARGB] to build real colors.
type Color struct {
	hue    float64
	chroma float64
	tone   float64
	argb   uint32
}

// From returns the color with the requested coordinates. Hue is
// normalized into [0, 360). The packed value is the closest sRGB color
// (see [Solve]); the coordinates are kept exactly as requested, so
// Hue, Chroma and Tone report the inputs rather than re-measuring the
// quantized color.
func From(hue, chroma, tone float64) Color {
	hue = SanitizeDegrees(hue)
	return Color{
		hue:    hue,
		chroma: chroma,
		tone:   tone,
		argb:   Solve(hue, chroma, tone),
	}
}

// FromARGB returns a packed color with coordinates measured from it.
func FromARGB(argb uint32) Color {
	cam := cam16FromARGB(argb)
	return Color{
		hue:    cam.hue,
		chroma: cam.chroma,
		tone:   LstarFromARGB(argb),
		argb:   argb,
	}
}

// Measured returns the color with its coordinates re-measured from the
// packed value, discarding any requested coordinates.
func (c Color) Measured() Color {
	return FromARGB(c.argb)
}

// MaxChroma returns the highest chroma sRGB can display at hue and tone.
func MaxChroma(hue, tone float64) float64 {
	return FromARGB(Solve(hue, ProbeChroma, tone)).chroma
}

// Hue in degrees, [0, 360).
func (c Color) Hue() float64 { return c.hue }

// Chroma, 0 for grays and roughly 120 at most in sRGB.
func (c Color) Chroma() float64 { return c.chroma }

// Tone is L*, from 0 (black) to 100 (white).
func (c Color) Tone() float64 { return c.tone }

// ARGB returns the packed 0xAARRGGBB value.
func (c Color) ARGB() uint32 { return c.argb }

// WithHue returns the color with the same chroma and tone at a new hue.
func (c Color) WithHue(hue float64) Color { return From(hue, c.chroma, c.tone) }

// WithChroma returns the color with the same hue and tone at a new chroma.
func (c Color) WithChroma(chroma float64) Color { return From(c.hue, chroma, c.tone) }

// WithTone returns the color with the same hue and chroma at a new tone.
func (c Color) WithTone(tone float64) Color { return From(c.hue, c.chroma, tone) }

// Hex returns the packed value as lowercase "#rrggbb".
func (c Color) Hex() string { return Hex(c.argb) }

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("HCT(%.2f, %.2f, %.2f) %s", c.hue, c.chroma, c.tone, c.Hex())
}
