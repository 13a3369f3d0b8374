// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the nscolor CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree by package commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Flags are declared as tagged struct fields (parameter groups such as
// GlobalParams and ColorFormat in package commands) and bound with
// [FlagsFromParams]. A choices tag limits a string flag to fixed values.
// Embedding [JSONOutput] adds --json and
// [JSONOutput.EmitJSON]. Errors are categorized with [ToolError], and
// [ExitError] carries a non-zero exit code for commands that already
// printed their own output.
//
// [NewCommandLogger] picks a colored namespace handler for terminals and
// JSON otherwise.
package cli
