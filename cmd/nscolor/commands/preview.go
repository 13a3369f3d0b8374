// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/hct"
	"github.com/bureau-foundation/nscolor/lib/material"
	"github.com/bureau-foundation/nscolor/lib/tui"
)

const swatchWidth = 6

type previewParams struct {
	GlobalParams
	Path  bool   `flag:"path" desc:"treat dots as path separators and compose each level under its parent"`
	Theme string `flag:"theme" desc:"namespace whose scheme colors the header and coordinates (default: built-in theme)"`
	Light bool   `flag:"light" desc:"use light-mode tones for --theme"`
}

func previewCommand(env Environment) *cli.Command {
	var params previewParams

	return &cli.Command{
		Name:    "preview",
		Summary: "Print color swatches for namespaces",
		Description: `Print one aligned row per namespace: the namespace in its color, a
swatch, the hex value, and the HCT coordinates.

Swatches need a color terminal. With color_profile set to ascii, or
when stdout is not a terminal, only the text columns carry information.`,
		Usage: "nscolor preview [flags] <namespace>...",
		Examples: []cli.Example{
			{
				Description: "Compare sibling services",
				Command:     "nscolor preview api worker scheduler",
			},
			{
				Description: "Preview a path with chrome derived from its root",
				Command:     "nscolor preview --path --theme api api.v1 api.v2",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("preview", &params)
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Validation("at least one namespace is required\n\nUsage: nscolor preview [flags] <namespace>...")
			}
			s, err := openSession(env, params.GlobalParams)
			if err != nil {
				return err
			}

			theme := tui.DefaultTheme
			if params.Theme != "" {
				theme = tui.ThemeFor(s.resolver.Namespace(params.Theme), !params.Light)
			}
			header := s.renderer.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
			faint := s.renderer.NewStyle().Foreground(theme.FaintText)

			colors := make([]hct.Color, len(args))
			labels := make([]string, len(args))
			for i, namespace := range args {
				if params.Path {
					colors[i] = s.resolver.Compose(material.ParsePath(namespace), s.resolver.Memoizes())
				} else {
					colors[i] = s.resolver.Resolve(namespace, s.resolver.Memoizes())
				}
				labels[i] = s.style(s.resolver.Wrap(colors[i])).Render(namespace)
			}
			width := max(tui.MaxWidth(labels), len("NAMESPACE"))

			var output strings.Builder
			fmt.Fprintf(&output, "%s  %s  %s  %s\n",
				tui.PadRight(header.Render("NAMESPACE"), width),
				tui.PadRight(header.Render("SWATCH"), swatchWidth),
				tui.PadRight(header.Render("HEX"), len("#rrggbb")),
				header.Render("HUE     CHROMA  TONE"))
			for i, color := range colors {
				swatch := s.renderer.NewStyle().Background(lipgloss.Color(color.Hex())).Render(strings.Repeat(" ", swatchWidth))
				coordinates := fmt.Sprintf("%-7.2f %-7.2f %.2f", color.Hue(), color.Chroma(), color.Tone())
				fmt.Fprintf(&output, "%s  %s  %s  %s\n",
					tui.PadRight(labels[i], width),
					swatch,
					color.Hex(),
					faint.Render(coordinates))
			}
			_, err = fmt.Fprint(env.Stdout, output.String())
			return err
		},
	}
}
