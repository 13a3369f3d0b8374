// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/hct"
	"github.com/bureau-foundation/nscolor/lib/material"
)

type matchParams struct {
	cli.JSONOutput
	ColorFormat
	Check bool `flag:"check" desc:"exit with status 1 when the input is outside the vivid band"`
}

type matchResult struct {
	Input  colorRecord `json:"input"`
	Match  colorRecord `json:"match"`
	InBand bool        `json:"in_band"`
}

func matchCommand(env Environment) *cli.Command {
	var params matchParams

	return &cli.Command{
		Name:    "match",
		Summary: "Clamp a color into the vivid tone band",
		Description: `Move a color's tone into the band derived colors live in.

Hue and chroma are kept; only the tone changes, and only when it falls
outside [68, 70]. This is what brand colors go through when the config
sets clamp_brands, so a brand sits at the same lightness as its
neighbors.

With --check, the matched color is still printed, and the exit status
is 1 when the input was outside the band or below the chroma floor.`,
		Usage: "nscolor match [flags] <#rrggbb>",
		Examples: []cli.Example{
			{
				Description: "Clamp pure red",
				Command:     "nscolor match '#ff0000'",
			},
			{
				Description: "Check whether a brand color needs clamping",
				Command:     "nscolor match --check '#1db7d6'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("match", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one color is required\n\nUsage: nscolor match [flags] <#rrggbb>")
			}
			input, err := hct.ParseHexColor(args[0])
			if err != nil {
				return cli.Validation("%w: %w", material.ErrInvalidColor, err).
					WithHint("Colors are written as #rrggbb or #rgb.")
			}

			matched := material.Match(input)
			inBand := material.InBand(input)

			if done, err := params.EmitJSON(env.Stdout, matchResult{
				Input:  newColorRecord(args[0], input),
				Match:  newColorRecord(args[0], matched),
				InBand: inBand,
			}); done {
				if err == nil && params.Check && !inBand {
					return &cli.ExitError{Code: 1}
				}
				return err
			}

			if _, err := fmt.Fprintln(env.Stdout, params.render(matched)); err != nil {
				return err
			}
			if params.Check && !inBand {
				fmt.Fprintf(env.Stderr, "%s is outside the vivid band: tone %.2f, chroma %.2f (want tone in [%g, %g], chroma >= %g)\n",
					input.Hex(), input.Tone(), input.Chroma(), material.ToneMin, material.ToneMax, material.MinChroma)
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
