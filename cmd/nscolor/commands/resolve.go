// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/hct"
	"github.com/bureau-foundation/nscolor/lib/material"
	"github.com/bureau-foundation/nscolor/lib/tui"
)

// Output formats accepted by --format.
const (
	formatHex  = "hex"
	formatARGB = "argb"
	formatHCT  = "hct"
)

// ColorFormat holds the --format flag shared by the color-printing
// commands.
type ColorFormat struct {
	Format string `flag:"format" desc:"output format: hex, argb, or hct" default:"hex" choices:"hex,argb,hct"`
}

func (f ColorFormat) render(color hct.Color) string {
	switch f.Format {
	case formatARGB:
		return fmt.Sprintf("0x%08x", color.ARGB())
	case formatHCT:
		return color.String()
	default:
		return color.Hex()
	}
}

// colorRecord is the JSON form of a resolved color.
type colorRecord struct {
	Namespace string  `json:"namespace"`
	Hex       string  `json:"hex"`
	ARGB      string  `json:"argb"`
	Hue       float64 `json:"hue"`
	Chroma    float64 `json:"chroma"`
	Tone      float64 `json:"tone"`
	Override  bool    `json:"override,omitempty"`
}

func newColorRecord(namespace string, color hct.Color) colorRecord {
	return colorRecord{
		Namespace: namespace,
		Hex:       color.Hex(),
		ARGB:      fmt.Sprintf("0x%08x", color.ARGB()),
		Hue:       color.Hue(),
		Chroma:    color.Chroma(),
		Tone:      color.Tone(),
	}
}

type resolveParams struct {
	GlobalParams
	cli.JSONOutput
	ColorFormat
	Path    bool `flag:"path" desc:"treat dots as path separators and compose each level under its parent"`
	NoCache bool `flag:"no-cache" desc:"do not memoize derived colors"`
}

func resolveCommand(env Environment) *cli.Command {
	var params resolveParams

	return &cli.Command{
		Name:    "resolve",
		Summary: "Print the color of one or more namespaces",
		Description: `Print the color derived for each namespace.

Without --path a namespace is hashed as a whole, so "api.v1" is one
namespace with its own color. With --path it is split on dots and
composed: "api" is resolved, then "v1" is derived under it and
harmonized toward it.

Brand colors from the config file take precedence over derived colors
for their namespace, and for every path below it.

A single namespace prints just the color. Several namespaces print one
aligned line each.`,
		Usage: "nscolor resolve [flags] <namespace>...",
		Examples: []cli.Example{
			{
				Description: "Print a namespace color as hex",
				Command:     "nscolor resolve foo",
			},
			{
				Description: "Print HCT coordinates for a composed path",
				Command:     "nscolor resolve --path --format hct foo.bar.baz",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("resolve", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Validation("at least one namespace is required\n\nUsage: nscolor resolve [flags] <namespace>...")
			}

			s, err := openSession(env, params.GlobalParams)
			if err != nil {
				return err
			}
			useCache := s.resolver.Memoizes() && !params.NoCache

			records := make([]colorRecord, len(args))
			colors := make([]hct.Color, len(args))
			for i, namespace := range args {
				if params.Path {
					colors[i] = s.resolver.Compose(material.ParsePath(namespace), useCache)
				} else {
					colors[i] = s.resolver.Resolve(namespace, useCache)
				}
				records[i] = newColorRecord(namespace, colors[i])
				records[i].Override = !params.Path && s.resolver.Cache().IsOverride(namespace)
			}

			if done, err := params.EmitJSON(env.Stdout, records); done {
				return err
			}

			if len(args) == 1 {
				_, err := fmt.Fprintln(env.Stdout, params.render(colors[0]))
				return err
			}

			labels := make([]string, len(args))
			for i, namespace := range args {
				labels[i] = s.style(s.resolver.Wrap(colors[i])).Render(namespace)
			}
			width := tui.MaxWidth(labels)

			var output strings.Builder
			for i := range args {
				fmt.Fprintf(&output, "%s  %s\n", tui.PadRight(labels[i], width), params.render(colors[i]))
			}
			_, err = fmt.Fprint(env.Stdout, output.String())
			return err
		},
	}
}
