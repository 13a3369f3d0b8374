// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
)

// Environment holds the writers commands print to.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// GlobalParams are the flags every command accepts.
type GlobalParams struct {
	Config  string `flag:"config" desc:"path to nscolor.yaml (default: $NSCOLOR_CONFIG)"`
	Verbose bool   `flag:"verbose,v" desc:"log namespace derivations and cache hits"`
}

// Root returns the top-level nscolor command.
func Root(env Environment) *cli.Command {
	return &cli.Command{
		Name:    "nscolor",
		Summary: "Deterministic namespace colors",
		Description: `nscolor maps namespace strings to stable, vivid colors.

A namespace is hashed with 32-bit FNV-1a and the hash drives a sampler
that picks a hue, a tone in [68, 70], and a chroma of at least 48 in
the HCT color space. The same namespace always yields the same color,
on every machine. Dotted paths compose: each child is derived under
its parent and harmonized toward it.

Brand colors from the config file replace the derived color of their
namespace, and every path below it inherits the change.`,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			resolveCommand(env),
			sampleCommand(env),
			hashCommand(env),
			matchCommand(env),
			chainCommand(env),
			previewCommand(env),
			schemeCommand(env),
			brandCommand(env),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Print the color of a namespace",
				Command:     "nscolor resolve http-server",
			},
			{
				Description: "Compose a dotted path",
				Command:     "nscolor resolve --path http-server.router.auth",
			},
			{
				Description: "Print a message prefixed by its namespace chain",
				Command:     "nscolor chain http-server.router started",
			},
		},
	}
}
