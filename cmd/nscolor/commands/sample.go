// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/material"
)

type sampleParams struct {
	cli.JSONOutput
	ColorFormat
}

func sampleCommand(env Environment) *cli.Command {
	var params sampleParams

	return &cli.Command{
		Name:    "sample",
		Summary: "Sample the color for a raw 32-bit seed",
		Description: `Run the color sampler on a seed directly, bypassing the hash.

The seed is a 32-bit unsigned integer, in decimal or with a 0x prefix.
"nscolor sample $(nscolor hash foo)" prints the same color as
"nscolor resolve foo" unless foo has a brand color.`,
		Usage: "nscolor sample [flags] <seed>",
		Examples: []cli.Example{
			{
				Description: "Sample seed zero",
				Command:     "nscolor sample 0",
			},
			{
				Description: "Sample a hexadecimal seed",
				Command:     "nscolor sample 0xa9f37ed7",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sample", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one seed is required\n\nUsage: nscolor sample [flags] <seed>")
			}
			seed, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return cli.Validation("invalid seed %q: %w", args[0], err).
					WithHint("Seeds are 32-bit unsigned integers, e.g. 42 or 0xa9f37ed7.")
			}

			color := material.Sample(uint32(seed))
			if done, err := params.EmitJSON(env.Stdout, newColorRecord(args[0], color)); done {
				return err
			}
			_, err = fmt.Fprintln(env.Stdout, params.render(color))
			return err
		},
	}
}
