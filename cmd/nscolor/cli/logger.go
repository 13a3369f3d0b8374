// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/nscolor/lib/tui"
)

// NewCommandLogger creates a structured logger for CLI command operations.
// When output is a terminal, records are printed by [tui.LogHandler]
// with their namespace attribute rendered in its own color by chain.
// When output is piped or redirected, uses slog.JSONHandler for
// machine-parseable output.
//
// verbose lowers the level from Info to Debug, which includes every
// namespace derivation and cache hit.
func NewCommandLogger(output io.Writer, verbose bool, chain *tui.ChainRenderer) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		options.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if isTerminal(output) {
		handler = tui.NewLogHandler(output, chain, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}
	return slog.New(handler)
}

func isTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
