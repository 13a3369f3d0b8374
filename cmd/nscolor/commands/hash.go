// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/fnv1a"
)

type hashParams struct {
	cli.JSONOutput
	Bits       int `flag:"bits" desc:"hash width: 32 or 64" default:"32"`
	BufferSize int `flag:"buffer-size" desc:"hash through a scratch buffer of this many bytes (0 hashes directly)"`
}

type hashResult struct {
	Input string `json:"input"`
	Bits  int    `json:"bits"`
	Hash  string `json:"hash"`
}

func hashCommand(env Environment) *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Print the FNV-1a hash of a string",
		Description: `Print the FNV-1a hash of the UTF-8 bytes of a string.

The 32-bit hash is the seed nscolor derives a namespace color from. The
64-bit width is provided for comparison with other FNV tools.`,
		Usage: "nscolor hash [flags] <string>",
		Examples: []cli.Example{
			{
				Description: "Print the seed for a namespace",
				Command:     "nscolor hash foo",
			},
			{
				Description: "Print the 64-bit hash",
				Command:     "nscolor hash --bits 64 foo",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("hash", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one string is required\n\nUsage: nscolor hash [flags] <string>")
			}
			if params.BufferSize < 0 {
				return cli.Validation("--buffer-size must not be negative, got %d", params.BufferSize)
			}

			var (
				sum uint64
				err error
			)
			if params.BufferSize > 0 {
				sum, err = fnv1a.SumStringBuffered(args[0], params.Bits, make([]byte, params.BufferSize))
			} else {
				sum, err = fnv1a.Sum([]byte(args[0]), params.Bits)
			}
			if err != nil {
				return cli.Validation("%w", err)
			}

			digits := params.Bits / 4
			result := hashResult{
				Input: args[0],
				Bits:  params.Bits,
				Hash:  fmt.Sprintf("0x%0*x", digits, sum),
			}
			if done, err := params.EmitJSON(env.Stdout, result); done {
				return err
			}
			_, err = fmt.Fprintln(env.Stdout, result.Hash)
			return err
		},
	}
}
