// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for nscolor.
//
// Configuration is loaded from a single file specified by either the
// NSCOLOR_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Without a file, callers use [Default].
//
// The file sets the resolver's caching default, the brand colors to
// register as namespace overrides, the terminal color profile, and the
// defaults for scheme output. Brand colors may reference environment
// variables with ${VAR} or ${VAR:-default}, so a deployment can supply
// its palette without editing the file. Unknown keys are rejected.
//
// Key exports:
//
//   - [Config] -- master struct with Cache, Brands, ColorProfile, Scheme
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.ApplyBrands] -- registers brands on a resolver
//
// This package depends on lib/hct, lib/material, lib/scheme, and
// lib/tui for validating and applying values.
package config
