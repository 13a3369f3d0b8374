// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scheme builds Material color schemes around a namespace color.
//
// A [Scheme] is a set of tonal palettes (primary, secondary, tertiary,
// neutral, neutral variant, error) derived from one source color by a
// variant rule, plus the light/dark mode and contrast level that pick
// tones out of those palettes for each [Role].
//
// Variant rules rotate or mute the source hue, so a scheme's primary
// palette usually differs from the source color. [WithSourceAsPrimary]
// replaces the primary palette with one keyed on the source itself, and
// [SourceAsPrimary] wraps a [Constructor] to apply it to every scheme it
// builds. [Build] turns a constructor into a material formatter.
//
// Key exports:
//
//   - [Scheme], [Variant], [Role]
//   - [NewVibrant], [NewTonalSpot], [NewNeutral], [ConstructorFor]
//   - [SourceAsPrimary], [WithSourceAsPrimary], [Build]
//
// This package depends on lib/hct and lib/material.
package scheme
