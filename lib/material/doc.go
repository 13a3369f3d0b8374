// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package material derives stable, vivid colors for namespace strings.
//
// A namespace ("db", "http.server", "worker.pool.3") is hashed with
// 32-bit FNV-1a and the hash seeds a [Sample]: three draws from one
// 32-bit entropy pool pick a hue, a tone inside the vivid band
// [ToneMin, ToneMax], and a chroma between [MinChroma] and the sRGB gamut
// boundary at that hue and tone. The band and the chroma floor hold by
// construction; there is no rejection sampling. [SamplingBudget] lists
// the bits each draw costs, and the package fails to compile if the
// plan exceeds the pool.
//
// A [Resolver] memoizes derivations in a [Cache]. The cache is an
// explicit object: share one instance for consistent colors across a
// process, or construct a fresh one for isolation. [Resolver.Override]
// registers a brand color for a namespace; overrides are consulted
// before derivation and are never replaced by memoized values.
//
// Hierarchical namespaces compose: [Resolver.Compose] resolves every
// segment of a [Path] and folds the colors from the leaf toward the
// root, harmonizing the running color toward each ancestor's hue.
// [Resolver.SubMaterial] is the two-segment case with an explicit
// parent color.
//
// [Match] clamps an arbitrary color's tone into the vivid band so that a
// brand color can sit beside generated ones.
//
// Results are presented through [Formatter] functions: [Format] applies
// one to a [Material]. Formatters exist for the color itself, hex, ARGB and lipgloss
// styles; package scheme adds full Material color schemes.
package material
