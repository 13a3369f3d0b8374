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
	"github.com/bureau-foundation/nscolor/lib/scheme"
	"github.com/bureau-foundation/nscolor/lib/tui"
)

type schemeParams struct {
	GlobalParams
	cli.JSONOutput
	Variant         string  `flag:"variant" desc:"scheme variant: vibrant, tonal_spot, or neutral (default: config scheme.variant)"`
	Dark            bool    `flag:"dark" desc:"use dark-mode tones (default: config scheme.dark)"`
	Contrast        float64 `flag:"contrast" desc:"contrast level in [-1, 1] (default: config scheme.contrast)"`
	SourceAsPrimary bool    `flag:"source-as-primary" desc:"key the primary palette on the namespace color (default: config scheme.source_as_primary)"`
	Path            bool    `flag:"path" desc:"treat dots as path separators and compose each level under its parent"`
}

type paletteRecord struct {
	Hue      float64 `json:"hue"`
	Chroma   float64 `json:"chroma"`
	KeyColor string  `json:"key_color"`
}

func newPaletteRecord(palette hct.TonalPalette, keyColor hct.Color) paletteRecord {
	return paletteRecord{
		Hue:      palette.Hue(),
		Chroma:   palette.Chroma(),
		KeyColor: keyColor.Hex(),
	}
}

type roleRecord struct {
	Name string  `json:"name"`
	Hex  string  `json:"hex"`
	Tone float64 `json:"tone"`
}

type schemeResult struct {
	Namespace string                   `json:"namespace"`
	Source    string                   `json:"source"`
	Variant   scheme.Variant           `json:"variant"`
	Dark      bool                     `json:"dark"`
	Contrast  float64                  `json:"contrast"`
	Palettes  map[string]paletteRecord `json:"palettes"`
	Roles     []roleRecord             `json:"roles"`
}

func schemeCommand(env Environment) *cli.Command {
	var (
		params  schemeParams
		flagSet *pflag.FlagSet
	)

	return &cli.Command{
		Name:    "scheme",
		Summary: "Print the Material color scheme keyed on a namespace",
		Description: `Build a Material color scheme from a namespace color and print its
roles.

The variant decides how the secondary, tertiary, and neutral palettes
relate to the source color. Flags that are not given fall back to the
scheme section of the config file.`,
		Usage: "nscolor scheme [flags] <namespace>",
		Examples: []cli.Example{
			{
				Description: "Print the tonal-spot scheme for a namespace",
				Command:     "nscolor scheme api",
			},
			{
				Description: "Print a dark vibrant scheme as JSON",
				Command:     "nscolor scheme --variant vibrant --dark --json api",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("scheme", &params)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one namespace is required\n\nUsage: nscolor scheme [flags] <namespace>")
			}
			s, err := openSession(env, params.GlobalParams)
			if err != nil {
				return err
			}

			settings := s.config.Scheme
			if flagSet.Changed("variant") {
				settings.Variant = params.Variant
			}
			if flagSet.Changed("dark") {
				settings.Dark = params.Dark
			}
			if flagSet.Changed("contrast") {
				settings.Contrast = params.Contrast
			}
			if flagSet.Changed("source-as-primary") {
				settings.SourceAsPrimary = params.SourceAsPrimary
			}
			if settings.Contrast < -1 || settings.Contrast > 1 {
				return cli.Validation("--contrast must be in [-1, 1], got %g", settings.Contrast)
			}

			variant, err := scheme.ParseVariant(settings.Variant)
			if err != nil {
				return cli.Validation("%w", err)
			}
			constructor, err := scheme.ConstructorFor(variant)
			if err != nil {
				return cli.Validation("%w", err)
			}
			if settings.SourceAsPrimary {
				constructor = scheme.SourceAsPrimary(constructor)
			}

			var m material.Material
			if params.Path {
				m = s.resolver.Material(material.ParsePath(args[0]))
			} else {
				m = s.resolver.Namespace(args[0])
			}
			built := material.Format(m, scheme.Build(constructor, settings.Dark, settings.Contrast))

			roles := built.Roles()
			result := schemeResult{
				Namespace: args[0],
				Source:    built.Source.Hex(),
				Variant:   built.Variant,
				Dark:      built.Dark,
				Contrast:  built.Contrast,
				Palettes: map[string]paletteRecord{
					"primary":         newPaletteRecord(built.PrimaryPalette, built.PrimaryPaletteKeyColor()),
					"secondary":       newPaletteRecord(built.SecondaryPalette, built.SecondaryPaletteKeyColor()),
					"tertiary":        newPaletteRecord(built.TertiaryPalette, built.TertiaryPaletteKeyColor()),
					"neutral":         newPaletteRecord(built.NeutralPalette, built.NeutralPaletteKeyColor()),
					"neutral_variant": newPaletteRecord(built.NeutralVariantPalette, built.NeutralVariantPaletteKeyColor()),
					"error":           newPaletteRecord(built.ErrorPalette, built.ErrorPaletteKeyColor()),
				},
				Roles: make([]roleRecord, len(roles)),
			}
			for i, role := range roles {
				result.Roles[i] = roleRecord{Name: role.Name, Hex: role.Color.Hex(), Tone: role.Color.Tone()}
			}
			if done, err := params.EmitJSON(env.Stdout, result); done {
				return err
			}

			names := make([]string, len(roles))
			for i, role := range roles {
				names[i] = role.Name
			}
			width := tui.MaxWidth(names)

			var output strings.Builder
			fmt.Fprintf(&output, "%s %s (%s, source %s)\n",
				s.style(m).Reverse(true).Render(args[0]), variant, modeName(built.Dark), built.Source.Hex())
			for _, role := range roles {
				swatch := s.renderer.NewStyle().Background(lipgloss.Color(role.Color.Hex())).Render(strings.Repeat(" ", swatchWidth))
				fmt.Fprintf(&output, "  %s  %s  %s  tone %.0f\n",
					tui.PadRight(role.Name, width), swatch, role.Color.Hex(), role.Color.Tone())
			}
			_, err = fmt.Fprint(env.Stdout, output.String())
			return err
		},
	}
}

func modeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
