// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/version"
)

type versionParams struct {
	Full bool `flag:"full" desc:"include Go version, platform, and color algorithm"`
}

func versionCommand(env Environment) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "nscolor version [--full]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("version takes no arguments, got %q", args[0])
			}
			return version.Print(env.Stdout, "nscolor", params.Full)
		},
	}
}
