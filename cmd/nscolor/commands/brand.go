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
)

type brandParams struct {
	GlobalParams
	Children []string `flag:"child" desc:"child namespaces to show under the brand (repeatable)" default:"api,worker"`
}

func brandCommand(env Environment) *cli.Command {
	var params brandParams

	return &cli.Command{
		Name:    "brand",
		Summary: "Preview a brand color override",
		Description: `Show how a brand color would change a namespace and the paths below it.

The namespace and each --child under it are printed twice, first with
their derived colors and then with the brand color registered as an
override. The brand is clamped into the vivid band first unless the
config sets clamp_brands to false.

Nothing is written; add the color to the brands section of the config
file to make it permanent.`,
		Usage: "nscolor brand [flags] <namespace> <#rrggbb>",
		Examples: []cli.Example{
			{
				Description: "Preview a red brand for the api namespace",
				Command:     "nscolor brand --child v1 --child v2 api '#ff0000'",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("brand", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return cli.Validation("a namespace and a color are required\n\nUsage: nscolor brand [flags] <namespace> <#rrggbb>")
			}
			namespace, value := args[0], args[1]

			s, err := openSession(env, params.GlobalParams)
			if err != nil {
				return err
			}

			var brand hct.Color
			if s.config.ClampBrands {
				brand, err = material.MatchHex(value)
			} else {
				brand, err = hct.ParseHexColor(value)
				if err != nil {
					err = fmt.Errorf("%w: %w", material.ErrInvalidColor, err)
				}
			}
			if err != nil {
				return cli.Validation("%w", err).WithHint("Colors are written as #rrggbb or #rgb.")
			}

			paths := []material.Path{material.Names(namespace)}
			for _, child := range params.Children {
				paths = append(paths, material.Names(namespace, child))
			}

			var output strings.Builder
			section := func(title string) {
				fmt.Fprintln(&output, title)
				for _, path := range paths {
					color := s.resolver.Compose(path, s.resolver.Memoizes())
					fmt.Fprintf(&output, "  %s\n", s.chain.Render(path, color.Hex()))
				}
			}

			section("before")
			s.resolver.Override(namespace, brand)
			section("after")

			_, err = fmt.Fprint(env.Stdout, output.String())
			return err
		},
	}
}
