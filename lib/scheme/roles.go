// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scheme

import (
	"math"

	"github.com/bureau-foundation/nscolor/lib/hct"
)

// contrastStep is how far, in tone, full contrast (±1) pushes a
// foreground role away from the surface.
const contrastStep = 10

// Role is one named color of a scheme.
type Role struct {
	Name  string
	Color hct.Color
}

// toneRule picks a role's tone in light and dark mode. Foreground roles
// move away from the surface as contrast rises; background roles stay.
type toneRule struct {
	light, dark float64
	foreground  bool
}

func (s *Scheme) tone(rule toneRule) float64 {
	base, surface := rule.light, 98.0
	if s.Dark {
		base, surface = rule.dark, 6.0
	}
	if !rule.foreground {
		return base
	}
	direction := -1.0
	if surface < base {
		direction = 1
	}
	return math.Max(0, math.Min(100, base+direction*s.Contrast*contrastStep))
}

var (
	primaryTone          = toneRule{light: 40, dark: 80, foreground: true}
	onPrimaryTone        = toneRule{light: 100, dark: 20}
	primaryContainerTone = toneRule{light: 90, dark: 30}
	accentTone           = toneRule{light: 40, dark: 80, foreground: true}
	surfaceTone          = toneRule{light: 98, dark: 6}
	surfaceVariantTone   = toneRule{light: 90, dark: 30}
	onSurfaceTone        = toneRule{light: 10, dark: 90, foreground: true}
	onSurfaceVariantTone = toneRule{light: 30, dark: 80, foreground: true}
	outlineTone          = toneRule{light: 50, dark: 60, foreground: true}
)

// Primary is the main accent color.
func (s *Scheme) Primary() hct.Color { return s.PrimaryPalette.Color(s.tone(primaryTone)) }

// OnPrimary is text drawn on Primary.
func (s *Scheme) OnPrimary() hct.Color { return s.PrimaryPalette.Color(s.tone(onPrimaryTone)) }

// PrimaryContainer is a low-emphasis fill in the primary hue.
func (s *Scheme) PrimaryContainer() hct.Color {
	return s.PrimaryPalette.Color(s.tone(primaryContainerTone))
}

func (s *Scheme) Secondary() hct.Color { return s.SecondaryPalette.Color(s.tone(accentTone)) }

func (s *Scheme) Tertiary() hct.Color { return s.TertiaryPalette.Color(s.tone(accentTone)) }

func (s *Scheme) Error() hct.Color { return s.ErrorPalette.Color(s.tone(accentTone)) }

// Surface is the background.
func (s *Scheme) Surface() hct.Color { return s.NeutralPalette.Color(s.tone(surfaceTone)) }

func (s *Scheme) SurfaceVariant() hct.Color {
	return s.NeutralVariantPalette.Color(s.tone(surfaceVariantTone))
}

// OnSurface is body text.
func (s *Scheme) OnSurface() hct.Color { return s.NeutralPalette.Color(s.tone(onSurfaceTone)) }

// OnSurfaceVariant is secondary text.
func (s *Scheme) OnSurfaceVariant() hct.Color {
	return s.NeutralVariantPalette.Color(s.tone(onSurfaceVariantTone))
}

// Outline is for borders and dividers.
func (s *Scheme) Outline() hct.Color {
	return s.NeutralVariantPalette.Color(s.tone(outlineTone))
}

// Roles returns every role in a stable order.
func (s *Scheme) Roles() []Role {
	return []Role{
		{"primary", s.Primary()},
		{"on_primary", s.OnPrimary()},
		{"primary_container", s.PrimaryContainer()},
		{"secondary", s.Secondary()},
		{"tertiary", s.Tertiary()},
		{"error", s.Error()},
		{"surface", s.Surface()},
		{"surface_variant", s.SurfaceVariant()},
		{"on_surface", s.OnSurface()},
		{"on_surface_variant", s.OnSurfaceVariant()},
		{"outline", s.Outline()},
	}
}

// PrimaryPaletteKeyColor is the primary palette's color at its key
// color's tone.
func (s *Scheme) PrimaryPaletteKeyColor() hct.Color { return paletteKeyColor(s.PrimaryPalette) }

func (s *Scheme) SecondaryPaletteKeyColor() hct.Color { return paletteKeyColor(s.SecondaryPalette) }

func (s *Scheme) TertiaryPaletteKeyColor() hct.Color { return paletteKeyColor(s.TertiaryPalette) }

func (s *Scheme) NeutralPaletteKeyColor() hct.Color { return paletteKeyColor(s.NeutralPalette) }

func (s *Scheme) NeutralVariantPaletteKeyColor() hct.Color {
	return paletteKeyColor(s.NeutralVariantPalette)
}

func (s *Scheme) ErrorPaletteKeyColor() hct.Color { return paletteKeyColor(s.ErrorPalette) }

// paletteKeyColor solves the palette at the key color's measured tone.
// The result can differ from KeyColor by one step in a channel, since
// KeyColor was solved with the requested tone.
func paletteKeyColor(palette hct.TonalPalette) hct.Color {
	return palette.Color(palette.KeyColor().Tone())
}
