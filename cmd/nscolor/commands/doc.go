// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the nscolor command tree.
//
// Every command opens a [session] before it runs: the configuration is
// loaded (from --config, NSCOLOR_CONFIG, or built-in defaults), the
// configured brand colors are registered as overrides, and the
// resolver, renderer, and logger are wired from it. Commands write to
// the writers in [Environment] rather than to os.Stdout directly, so
// tests drive the tree with buffers.
package commands
