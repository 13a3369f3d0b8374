// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui renders namespace colors in the terminal.
//
// Output goes through lipgloss renderers pinned to a termenv color
// profile ([NewRenderer], [ParseProfile]), so the same code produces
// truecolor, 256-color, 16-color, or plain output depending on the
// terminal or on configuration.
//
// [ChainRenderer] prints a message prefixed by its namespace path, each
// segment in its own color and the message in the path's composite
// color. [LogHandler] is a slog.Handler that uses it for the
// "namespace" attribute of each record. [ThemeFor] derives a [Theme]
// from a material's color scheme, for consistent chrome around colored
// output.
package tui
