// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hct

import "math"

// maxHarmonizeRotation caps how far Harmonize moves a hue, in degrees.
const maxHarmonizeRotation = 15.0

// Harmonize shifts design's hue toward source's hue by half their
// difference, at most 15 degrees, keeping design's chroma and tone.
// The operation is one-directional: Harmonize(a, b) and Harmonize(b, a)
// generally differ.
func Harmonize(design, source uint32) uint32 {
	from := FromARGB(design)
	to := FromARGB(source)
	rotation := math.Min(DifferenceDegrees(from.hue, to.hue)*0.5, maxHarmonizeRotation)
	hue := SanitizeDegrees(from.hue + rotation*rotationDirection(from.hue, to.hue))
	return Solve(hue, from.chroma, from.tone)
}

// HarmonizeColor is Harmonize on Color values. The result's
// coordinates are measured from the harmonized packed color.
func HarmonizeColor(design, source Color) Color {
	return FromARGB(Harmonize(design.argb, source.argb))
}
