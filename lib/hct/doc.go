// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hct implements the HCT (hue, chroma, tone) color space used to
// derive namespace colors.
//
// HCT combines the hue and chroma of the CAM16 color appearance model
// with the L* lightness of CIELAB as tone. Equal steps in each
// coordinate look roughly equal to a human observer, which is what lets
// generated colors share a fixed "vividness" regardless of hue.
//
// The model follows the published Material color utilities so that
// packed colors match other implementations bit for bit:
//
//   - [Color] is an immutable HCT value paired with its packed ARGB.
//     [From] solves for the ARGB of requested coordinates and keeps the
//     coordinates as given; [FromARGB] measures coordinates from a packed
//     color. FromARGB(x).ARGB() == x for every x.
//   - [MaxChroma] finds the gamut boundary: the chroma actually
//     reachable in sRGB at a hue and tone.
//   - [Harmonize] rotates one color's hue toward another's while keeping
//     its chroma and tone.
//   - [TonalPalette] produces colors of one hue and chroma at any tone.
//   - [Hex] and [ParseHex] convert between packed colors and "#rrggbb"
//     strings.
//
// All functions are pure and safe for concurrent use.
package hct
