// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scheme

import (
	"fmt"
	"math"

	"github.com/bureau-foundation/nscolor/lib/hct"
	"github.com/bureau-foundation/nscolor/lib/material"
)

// Variant names the rule that derives palettes from the source color.
type Variant string

const (
	// Vibrant maximizes primary chroma and rotates the secondary and
	// tertiary hues by an amount that depends on the source hue.
	Vibrant Variant = "vibrant"

	// TonalSpot is the default Material 3 look: a moderately chromatic
	// primary with a tertiary 60 degrees away.
	TonalSpot Variant = "tonal_spot"

	// Neutral keeps every palette close to gray.
	Neutral Variant = "neutral"
)

// Variants lists the supported variants in display order.
var Variants = []Variant{Vibrant, TonalSpot, Neutral}

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, error) {
	for _, variant := range Variants {
		if string(variant) == s {
			return variant, nil
		}
	}
	return "", fmt.Errorf("unknown scheme variant %q (want vibrant, tonal_spot, or neutral)", s)
}

// Scheme is a Material color scheme. Schemes are values: transforms
// such as [WithSourceAsPrimary] return a modified copy.
type Scheme struct {
	// Source is the source color with coordinates measured from its
	// packed value. Palettes are keyed on the measured hue, so a color
	// built from requested coordinates yields the same scheme as its
	// hex value.
	Source   hct.Color
	Variant  Variant
	Dark     bool
	Contrast float64

	PrimaryPalette        hct.TonalPalette
	SecondaryPalette      hct.TonalPalette
	TertiaryPalette       hct.TonalPalette
	NeutralPalette        hct.TonalPalette
	NeutralVariantPalette hct.TonalPalette
	ErrorPalette          hct.TonalPalette
}

// Constructor builds a scheme from a source color. contrast is in
// [-1, 1]: 0 is the standard level, 1 the highest.
type Constructor func(source hct.Color, dark bool, contrast float64) *Scheme

// ConstructorFor returns the constructor of variant.
func ConstructorFor(variant Variant) (Constructor, error) {
	switch variant {
	case Vibrant:
		return NewVibrant, nil
	case TonalSpot:
		return NewTonalSpot, nil
	case Neutral:
		return NewNeutral, nil
	default:
		return nil, fmt.Errorf("unknown scheme variant %q", variant)
	}
}

var (
	vibrantHues               = []float64{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRotations = []float64{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations  = []float64{35, 30, 20, 25, 30, 35, 30, 25, 25}
)

// NewVibrant builds a vibrant scheme.
func NewVibrant(source hct.Color, dark bool, contrast float64) *Scheme {
	source = source.Measured()
	hue := source.Hue()
	return &Scheme{
		Source:                source,
		Variant:               Vibrant,
		Dark:                  dark,
		Contrast:              clampContrast(contrast),
		PrimaryPalette:        hct.PaletteFromHueAndChroma(hue, hct.ProbeChroma),
		SecondaryPalette:      hct.PaletteFromHueAndChroma(rotatedHue(hue, vibrantHues, vibrantSecondaryRotations), 24),
		TertiaryPalette:       hct.PaletteFromHueAndChroma(rotatedHue(hue, vibrantHues, vibrantTertiaryRotations), 32),
		NeutralPalette:        hct.PaletteFromHueAndChroma(hue, 10),
		NeutralVariantPalette: hct.PaletteFromHueAndChroma(hue, 12),
		ErrorPalette:          errorPalette(),
	}
}

// NewTonalSpot builds a tonal-spot scheme.
func NewTonalSpot(source hct.Color, dark bool, contrast float64) *Scheme {
	source = source.Measured()
	hue := source.Hue()
	return &Scheme{
		Source:                source,
		Variant:               TonalSpot,
		Dark:                  dark,
		Contrast:              clampContrast(contrast),
		PrimaryPalette:        hct.PaletteFromHueAndChroma(hue, 36),
		SecondaryPalette:      hct.PaletteFromHueAndChroma(hue, 16),
		TertiaryPalette:       hct.PaletteFromHueAndChroma(hct.SanitizeDegrees(hue+60), 24),
		NeutralPalette:        hct.PaletteFromHueAndChroma(hue, 6),
		NeutralVariantPalette: hct.PaletteFromHueAndChroma(hue, 8),
		ErrorPalette:          errorPalette(),
	}
}

// NewNeutral builds a near-grayscale scheme.
func NewNeutral(source hct.Color, dark bool, contrast float64) *Scheme {
	source = source.Measured()
	hue := source.Hue()
	return &Scheme{
		Source:                source,
		Variant:               Neutral,
		Dark:                  dark,
		Contrast:              clampContrast(contrast),
		PrimaryPalette:        hct.PaletteFromHueAndChroma(hue, 12),
		SecondaryPalette:      hct.PaletteFromHueAndChroma(hue, 8),
		TertiaryPalette:       hct.PaletteFromHueAndChroma(hue, 16),
		NeutralPalette:        hct.PaletteFromHueAndChroma(hue, 2),
		NeutralVariantPalette: hct.PaletteFromHueAndChroma(hue, 2),
		ErrorPalette:          errorPalette(),
	}
}

func errorPalette() hct.TonalPalette {
	return hct.PaletteFromHueAndChroma(25, 84)
}

func clampContrast(contrast float64) float64 {
	return math.Max(-1, math.Min(1, contrast))
}

// rotatedHue finds the segment of hues that strictly contains
// sourceHue and applies that segment's rotation. A hue sitting exactly
// on a boundary is not rotated.
func rotatedHue(sourceHue float64, hues, rotations []float64) float64 {
	if len(rotations) == 1 {
		return hct.SanitizeDegrees(sourceHue + rotations[0])
	}
	for i := 0; i+1 < len(hues); i++ {
		if hues[i] < sourceHue && sourceHue < hues[i+1] {
			return hct.SanitizeDegrees(sourceHue + rotations[i])
		}
	}
	return sourceHue
}

// WithSourceAsPrimary returns a copy of s whose primary palette is keyed
// on the source color itself, so the scheme's primary is exactly the
// namespace color rather than the variant's reinterpretation of it.
func WithSourceAsPrimary(s *Scheme) *Scheme {
	adjusted := *s
	adjusted.PrimaryPalette = hct.PaletteFromColor(s.Source.Measured())
	return &adjusted
}

// SourceAsPrimary wraps constructor so every scheme it builds has
// passed through [WithSourceAsPrimary].
func SourceAsPrimary(constructor Constructor) Constructor {
	return func(source hct.Color, dark bool, contrast float64) *Scheme {
		return WithSourceAsPrimary(constructor(source, dark, contrast))
	}
}

// Build returns a material formatter that builds a scheme around the
// formatted color with the given mode and contrast.
func Build(constructor Constructor, dark bool, contrast float64) material.Formatter[*Scheme] {
	return func(source hct.Color) *Scheme {
		return constructor(source, dark, contrast)
	}
}
