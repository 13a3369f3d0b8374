// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/nscolor/lib/material"
	"github.com/bureau-foundation/nscolor/lib/scheme"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "nscolor.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Cache {
		t.Error("expected cache=true by default")
	}
	if !cfg.ClampBrands {
		t.Error("expected clamp_brands=true by default")
	}
	if cfg.ColorProfile != "auto" {
		t.Errorf("expected color_profile=auto, got %s", cfg.ColorProfile)
	}
	if cfg.Scheme.Variant != "tonal_spot" {
		t.Errorf("expected scheme.variant=tonal_spot, got %s", cfg.Scheme.Variant)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad_RequiresConfigVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if !errors.Is(err, ErrConfigNotSet) {
		t.Fatalf("Load() error = %v, want ErrConfigNotSet", err)
	}
	if !strings.HasPrefix(err.Error(), "NSCOLOR_CONFIG environment variable not set") {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

func TestLoad_WithConfigVariable(t *testing.T) {
	configPath := writeConfig(t, `
cache: false
color_profile: ansi256
brands:
  company: "#ff0000"
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Cache {
		t.Error("expected cache=false from file")
	}
	if cfg.ColorProfile != "ansi256" {
		t.Errorf("expected color_profile=ansi256, got %s", cfg.ColorProfile)
	}
	if cfg.Brands["company"] != "#ff0000" {
		t.Errorf("expected brands.company=#ff0000, got %q", cfg.Brands["company"])
	}
	// Unset fields keep their defaults.
	if !cfg.ClampBrands {
		t.Error("expected clamp_brands default to survive")
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
scheme:
  variant: vibrant
  dark: true
  contrast: 0.5
  source_as_primary: true
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Scheme.Variant != "vibrant" || !cfg.Scheme.Dark || cfg.Scheme.Contrast != 0.5 || !cfg.Scheme.SourceAsPrimary {
		t.Errorf("unexpected scheme config %+v", cfg.Scheme)
	}

	constructor, err := cfg.SchemeConstructor()
	if err != nil {
		t.Fatalf("SchemeConstructor() failed: %v", err)
	}
	foo := material.Derive("foo")
	built := constructor(foo, true, 0)
	if built.Variant != scheme.Vibrant {
		t.Errorf("constructor built %s, want vibrant", built.Variant)
	}
	if built.PrimaryPalette.KeyColor() != foo {
		t.Error("source_as_primary did not key the primary palette on the source")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile(empty) failed: %v", err)
	}
	if !cfg.Cache || cfg.ColorProfile != "auto" {
		t.Errorf("empty file did not produce defaults: %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "colour_profile: ascii\n", "colour_profile"},
		{"bad profile", "color_profile: sixel\n", "color_profile"},
		{"bad variant", "scheme:\n  variant: expressive\n", "scheme.variant"},
		{"bad contrast", "scheme:\n  contrast: 2\n", "scheme.contrast"},
		{"bad brand", "brands:\n  company: red\n", "brands.company"},
		{"malformed", "cache: [\n", "parsing"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, test.content))
			if err == nil {
				t.Fatal("LoadFile succeeded")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not mention %q", err.Error(), test.want)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want ErrNotExist", err)
	}
}

func TestLoadFile_ExpandsBrandVariables(t *testing.T) {
	t.Setenv("NSCOLOR_TEST_BRAND", "#00ff00")
	configPath := writeConfig(t, `
brands:
  set: "${NSCOLOR_TEST_BRAND}"
  fallback: "${NSCOLOR_TEST_UNSET:-#0000ff}"
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Brands["set"] != "#00ff00" {
		t.Errorf("brands.set = %q, want #00ff00", cfg.Brands["set"])
	}
	if cfg.Brands["fallback"] != "#0000ff" {
		t.Errorf("brands.fallback = %q, want #0000ff", cfg.Brands["fallback"])
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${BRAND}",
			vars:     map[string]string{"BRAND": "#123456"},
			expected: "#123456",
		},
		{
			input:    "${NSCOLOR_TEST_MISSING:-#abcdef}",
			vars:     map[string]string{},
			expected: "#abcdef",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "#ff0000",
			vars:     map[string]string{},
			expected: "#ff0000",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.ColorProfile = "bogus"
	cfg.Scheme.Contrast = -3

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() succeeded")
	}
	for _, want := range []string{"color_profile", "scheme.contrast"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err.Error(), want)
		}
	}
}

func TestApplyBrands(t *testing.T) {
	cfg := Default()
	cfg.Brands = map[string]string{"company": "#ff0000", "dark": "#101010"}

	resolver := material.NewResolver(nil)
	if err := cfg.ApplyBrands(resolver); err != nil {
		t.Fatalf("ApplyBrands() failed: %v", err)
	}

	want, err := material.MatchHex("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if got := resolver.Resolve("company", true); got != want {
		t.Errorf("Resolve(company) = %v, want %v", got, want)
	}
	if got := resolver.Resolve("dark", true).Tone(); got != material.ToneMin {
		t.Errorf("clamped brand tone = %v, want %v", got, material.ToneMin)
	}
}

func TestApplyBrands_Unclamped(t *testing.T) {
	cfg := Default()
	cfg.ClampBrands = false
	cfg.Brands = map[string]string{"company": "#ff0000"}

	resolver := material.NewResolver(nil)
	if err := cfg.ApplyBrands(resolver); err != nil {
		t.Fatalf("ApplyBrands() failed: %v", err)
	}
	if got := resolver.Resolve("company", true).ARGB(); got != 0xFFFF0000 {
		t.Errorf("unclamped brand = %#x, want 0xffff0000", got)
	}
}

func TestApplyBrands_AllOrNothing(t *testing.T) {
	cfg := Default()
	cfg.Brands = map[string]string{"a": "#ff0000", "b": "nope"}

	resolver := material.NewResolver(nil)
	err := cfg.ApplyBrands(resolver)
	if !errors.Is(err, material.ErrInvalidColor) {
		t.Fatalf("ApplyBrands() error = %v, want ErrInvalidColor", err)
	}
	if resolver.Cache().Len() != 0 {
		t.Errorf("ApplyBrands registered %d brands despite failing", resolver.Cache().Len())
	}
}

func TestResolverOptions(t *testing.T) {
	cfg := Default()
	if len(cfg.ResolverOptions()) != 0 {
		t.Error("cache=true should need no options")
	}
	cfg.Cache = false
	resolver := material.NewResolver(nil, cfg.ResolverOptions()...)
	resolver.Namespace("foo")
	if resolver.Cache().Len() != 0 {
		t.Error("cache=false resolver memoized a color")
	}
}
