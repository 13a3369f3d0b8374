// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/nscolor/lib/hct"
	"github.com/bureau-foundation/nscolor/lib/material"
	"github.com/bureau-foundation/nscolor/lib/scheme"
	"github.com/bureau-foundation/nscolor/lib/tui"
)

// EnvironmentVariable names the config file for [Load].
const EnvironmentVariable = "NSCOLOR_CONFIG"

// ErrConfigNotSet is returned by [Load] when NSCOLOR_CONFIG is unset.
var ErrConfigNotSet = errors.New(EnvironmentVariable + " environment variable not set")

// Config is the nscolor configuration.
type Config struct {
	// Cache is the resolver's default for memoizing derived colors.
	// Default: true
	Cache bool `yaml:"cache"`

	// ClampBrands runs brand colors through the tone matcher before
	// registering them, so they sit in the same vivid band as derived
	// colors. Default: true
	ClampBrands bool `yaml:"clamp_brands"`

	// Brands maps namespaces to "#rrggbb" colors that replace their
	// derived colors.
	Brands map[string]string `yaml:"brands"`

	// ColorProfile selects the terminal color profile: auto, truecolor,
	// ansi256, ansi, or ascii. Default: auto
	ColorProfile string `yaml:"color_profile"`

	// Scheme sets the defaults for scheme output.
	Scheme SchemeConfig `yaml:"scheme"`
}

// SchemeConfig configures Material color scheme generation.
type SchemeConfig struct {
	// Variant is vibrant, tonal_spot, or neutral. Default: tonal_spot
	Variant string `yaml:"variant"`

	// Dark selects dark-mode tones.
	Dark bool `yaml:"dark"`

	// Contrast is in [-1, 1]; 0 is standard.
	Contrast float64 `yaml:"contrast"`

	// SourceAsPrimary keys the primary palette on the namespace color
	// itself instead of the variant's rule.
	SourceAsPrimary bool `yaml:"source_as_primary"`
}

// Default returns the default configuration. It is the base that a
// config file is decoded over, and the configuration used when no file
// is given.
func Default() *Config {
	return &Config{
		Cache:        true,
		ClampBrands:  true,
		ColorProfile: tui.ProfileAuto,
		Scheme: SchemeConfig{
			Variant: string(scheme.TonalSpot),
		},
	}
}

// Load loads configuration from the NSCOLOR_CONFIG environment
// variable. If it is not set, Load returns an error wrapping
// [ErrConfigNotSet].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%w; set it to the path of your nscolor.yaml config file, or use --config flag", ErrConfigNotSet)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path and validates
// it. The only expansion performed is ${VAR} in brand colors.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single configuration file over the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in brand
// colors.
func (c *Config) expandVariables() {
	for namespace, color := range c.Brands {
		c.Brands[namespace] = expandVars(color, nil)
	}
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, _, err := tui.ParseProfile(c.ColorProfile); err != nil {
		errs = append(errs, fmt.Errorf("color_profile: %w", err))
	}

	if _, err := scheme.ParseVariant(c.Scheme.Variant); err != nil {
		errs = append(errs, fmt.Errorf("scheme.variant: %w", err))
	}

	if c.Scheme.Contrast < -1 || c.Scheme.Contrast > 1 {
		errs = append(errs, fmt.Errorf("scheme.contrast must be in [-1, 1], got %v", c.Scheme.Contrast))
	}

	for _, namespace := range c.BrandNamespaces() {
		if _, err := material.MatchHex(c.Brands[namespace]); err != nil {
			errs = append(errs, fmt.Errorf("brands.%s: %w", namespace, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// BrandNamespaces returns the namespaces with brand colors, sorted.
func (c *Config) BrandNamespaces() []string {
	namespaces := make([]string, 0, len(c.Brands))
	for namespace := range c.Brands {
		namespaces = append(namespaces, namespace)
	}
	slices.Sort(namespaces)
	return namespaces
}

// BrandColor returns the color registered for namespace, clamped into
// the vivid band when ClampBrands is set.
func (c *Config) BrandColor(namespace string) (hct.Color, error) {
	value, ok := c.Brands[namespace]
	if !ok {
		return hct.Color{}, fmt.Errorf("no brand color for namespace %q", namespace)
	}
	if c.ClampBrands {
		return material.MatchHex(value)
	}
	color, err := hct.ParseHexColor(value)
	if err != nil {
		return hct.Color{}, fmt.Errorf("%w: %w", material.ErrInvalidColor, err)
	}
	return color, nil
}

// ApplyBrands registers every brand color as an override on resolver.
// Nothing is registered if any brand fails to parse.
func (c *Config) ApplyBrands(resolver *material.Resolver) error {
	namespaces := c.BrandNamespaces()
	colors := make([]hct.Color, len(namespaces))
	for i, namespace := range namespaces {
		color, err := c.BrandColor(namespace)
		if err != nil {
			return fmt.Errorf("brand %q: %w", namespace, err)
		}
		colors[i] = color
	}
	for i, namespace := range namespaces {
		resolver.Override(namespace, colors[i])
	}
	return nil
}

// ResolverOptions returns the resolver options implied by the config.
func (c *Config) ResolverOptions() []material.Option {
	if c.Cache {
		return nil
	}
	return []material.Option{material.WithoutMemoization()}
}

// SchemeConstructor returns the configured scheme constructor.
func (c *Config) SchemeConstructor() (scheme.Constructor, error) {
	variant, err := scheme.ParseVariant(c.Scheme.Variant)
	if err != nil {
		return nil, err
	}
	constructor, err := scheme.ConstructorFor(variant)
	if err != nil {
		return nil, err
	}
	if c.Scheme.SourceAsPrimary {
		constructor = scheme.SourceAsPrimary(constructor)
	}
	return constructor, nil
}
