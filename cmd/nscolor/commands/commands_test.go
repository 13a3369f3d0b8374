// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/nscolor/cmd/nscolor/cli"
	"github.com/bureau-foundation/nscolor/lib/config"
	"github.com/bureau-foundation/nscolor/lib/fnv1a"
	"github.com/bureau-foundation/nscolor/lib/material"
)

// execute runs the command tree with buffered output and no config
// file. A buffer is not a terminal, so styled output is plain text and
// logs are JSON.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var out, errOut bytes.Buffer
	err = Root(Environment{Stdout: &out, Stderr: &errOut}).Execute(args)
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nscolor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func requireCategory(t *testing.T, err error, category cli.ErrorCategory) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error %v (%T) is not a *cli.ToolError", err, err)
	}
	if toolErr.Category != category {
		t.Errorf("category = %q, want %q", toolErr.Category, category)
	}
}

func TestRoot_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := Root(Environment{Stdout: &stdout, Stderr: &stderr})
	if err := root.Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute(--help): %v", err)
	}
	help := stderr.String()
	for _, name := range []string{"resolve", "sample", "hash", "match", "chain", "preview", "scheme", "brand", "version"} {
		if !strings.Contains(help, "  "+name) {
			t.Errorf("root help does not list %q:\n%s", name, help)
		}
	}
	if stdout.Len() != 0 {
		t.Errorf("help wrote to stdout: %q", stdout.String())
	}
}

func TestRoot_SubcommandHelpGoesToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "resolve", "--help")
	if err != nil {
		t.Fatalf("resolve --help: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "--no-cache") || !strings.Contains(stderr, "nscolor resolve [flags] <namespace>...") {
		t.Errorf("resolve help missing flags or usage:\n%s", stderr)
	}
}

func TestRoot_UnknownCommandSuggests(t *testing.T) {
	_, _, err := execute(t, "resolv", "foo")
	requireCategory(t, err, cli.CategoryValidation)
	if !strings.Contains(err.Error(), `did you mean "resolve"?`) {
		t.Errorf("error = %q, want a suggestion for resolve", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hex", []string{"resolve", "foo"}, "#1db7d6\n"},
		{"argb", []string{"resolve", "--format", "argb", "foo"}, "0xff1db7d6\n"},
		{"hct", []string{"resolve", "--format", "hct", "foo"}, "HCT(217.61, 48.89, 68.73) #1db7d6\n"},
		{"path", []string{"resolve", "--path", "foo.bar"}, "#00c354\n"},
		{"path full", []string{"resolve", "--path", "--format", "argb", "foo.bar.baz"}, "0xff00b7e1\n"},
		{"no cache", []string{"resolve", "--no-cache", "bar"}, "#67be13\n"},
		{"several", []string{"resolve", "foo", "bar", "baz"}, "foo  #1db7d6\nbar  #67be13\nbaz  #4ab1f6\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout, _, err := execute(t, test.args...)
			if err != nil {
				t.Fatalf("%v: %v", test.args, err)
			}
			if stdout != test.want {
				t.Errorf("%v = %q, want %q", test.args, stdout, test.want)
			}
		})
	}
}

func TestResolve_DottedNamespaceWithoutPath(t *testing.T) {
	stdout, _, err := execute(t, "resolve", "foo.bar")
	if err != nil {
		t.Fatalf("resolve foo.bar: %v", err)
	}
	want := material.Derive("foo.bar").Hex() + "\n"
	if stdout != want {
		t.Errorf("resolve foo.bar = %q, want %q (the flat namespace)", stdout, want)
	}
}

func TestResolve_JSON(t *testing.T) {
	stdout, _, err := execute(t, "resolve", "--json", "foo", "bar")
	if err != nil {
		t.Fatalf("resolve --json: %v", err)
	}
	var records []colorRecord
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	first := records[0]
	if first.Namespace != "foo" || first.Hex != "#1db7d6" || first.ARGB != "0xff1db7d6" {
		t.Errorf("records[0] = %+v, want foo #1db7d6 0xff1db7d6", first)
	}
	if first.Tone < material.ToneMin || first.Tone > material.ToneMax {
		t.Errorf("records[0].Tone = %v, want within [%v, %v]", first.Tone, material.ToneMin, material.ToneMax)
	}
	if first.Override {
		t.Error("records[0].Override = true for a derived color")
	}
	if records[1].Hex != "#67be13" {
		t.Errorf("records[1].Hex = %q, want #67be13", records[1].Hex)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no namespace", []string{"resolve"}},
		{"unknown format", []string{"resolve", "--format", "rgb", "foo"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := execute(t, test.args...)
			requireCategory(t, err, cli.CategoryValidation)
		})
	}
}

func TestResolve_FormatChoices(t *testing.T) {
	_, _, err := execute(t, "resolve", "--format", "rgb", "foo")
	requireCategory(t, err, cli.CategoryValidation)
	if !strings.Contains(err.Error(), "must be one of hex, argb, hct") {
		t.Errorf("resolve --format rgb error = %q, want the accepted formats", err)
	}
}

func TestResolve_UnknownFlagSuggests(t *testing.T) {
	_, _, err := execute(t, "resolve", "--no-cach", "foo")
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --no-cache?") {
		t.Errorf("error = %q, want a suggestion for --no-cache", err)
	}
}

func TestResolve_BrandFromConfig(t *testing.T) {
	path := writeConfig(t, "brands:\n  foo: \"#ff0000\"\n")

	stdout, _, err := execute(t, "resolve", "--config", path, "--json", "foo")
	if err != nil {
		t.Fatalf("resolve with brand: %v", err)
	}
	var records []colorRecord
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if records[0].Hex != "#ff816e" {
		t.Errorf("branded foo = %q, want the clamped brand #ff816e", records[0].Hex)
	}
	if !records[0].Override {
		t.Error("branded foo is not reported as an override")
	}

	stdout, _, err = execute(t, "resolve", "--config", path, "--path", "foo.bar")
	if err != nil {
		t.Fatalf("resolve --path with brand: %v", err)
	}
	if stdout == "#00c354\n" {
		t.Error("foo.bar kept its derived color after foo was branded")
	}
}

func TestResolve_ConfigFromEnvironment(t *testing.T) {
	path := writeConfig(t, "brands:\n  foo: \"#ff0000\"\nclamp_brands: false\n")

	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvironmentVariable, path)
	if err := Root(Environment{Stdout: &stdout, Stderr: &stderr}).Execute([]string{"resolve", "foo"}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := stdout.String(); got != "#ff0000\n" {
		t.Errorf("resolve foo = %q, want the unclamped brand #ff0000", got)
	}
}

func TestResolve_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "color_profile: sepia\n")
	_, _, err := execute(t, "resolve", "--config", path, "foo")
	requireCategory(t, err, cli.CategoryValidation)
}

func TestResolve_TrueColorProfile(t *testing.T) {
	path := writeConfig(t, "color_profile: truecolor\n")
	stdout, _, err := execute(t, "resolve", "--config", path, "foo", "bar")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(stdout, "38;2;29;183;214") {
		t.Errorf("output %q does not color foo with #1db7d6", stdout)
	}
	if got := ansi.Strip(stdout); got != "foo  #1db7d6\nbar  #67be13\n" {
		t.Errorf("stripped output = %q", got)
	}
}

func TestResolve_VerboseLogsDerivation(t *testing.T) {
	_, stderr, err := execute(t, "resolve", "--verbose", "foo")
	if err != nil {
		t.Fatalf("resolve --verbose: %v", err)
	}
	if !strings.Contains(stderr, `"msg":"derived namespace color"`) || !strings.Contains(stderr, `"namespace":"foo"`) {
		t.Errorf("stderr does not log the derivation of foo:\n%s", stderr)
	}

	_, stderr, err = execute(t, "resolve", "foo")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr without --verbose = %q, want empty", stderr)
	}
}

func TestSample(t *testing.T) {
	tests := []struct {
		seed string
		want string
	}{
		{"0", "#ee86a9\n"},
		{"42", "#ee86a7\n"},
		{"0xa9f37ed7", "#1db7d6\n"},
		{"2851307223", "#1db7d6\n"},
	}
	for _, test := range tests {
		stdout, _, err := execute(t, "sample", test.seed)
		if err != nil {
			t.Fatalf("sample %s: %v", test.seed, err)
		}
		if stdout != test.want {
			t.Errorf("sample %s = %q, want %q", test.seed, stdout, test.want)
		}
	}
}

func TestSample_InvalidSeed(t *testing.T) {
	for _, seed := range []string{"4294967296", "0x100000000", "foo", ""} {
		_, _, err := execute(t, "sample", seed)
		requireCategory(t, err, cli.CategoryValidation)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"hash", "foo"}, "0xa9f37ed7\n"},
		{[]string{"hash", "--buffer-size", "2", "foo"}, "0xa9f37ed7\n"},
		{[]string{"hash", "--bits", "64", "foo"}, "0xdcb27518fed9d577\n"},
		{[]string{"hash", ""}, "0x811c9dc5\n"},
	}
	for _, test := range tests {
		stdout, _, err := execute(t, test.args...)
		if err != nil {
			t.Fatalf("%v: %v", test.args, err)
		}
		if stdout != test.want {
			t.Errorf("%v = %q, want %q", test.args, stdout, test.want)
		}
	}
}

func TestHash_Errors(t *testing.T) {
	_, _, err := execute(t, "hash", "--bits", "16", "foo")
	requireCategory(t, err, cli.CategoryValidation)
	if !errors.Is(err, fnv1a.ErrUnsupportedSize) {
		t.Errorf("hash --bits 16 error = %v, want ErrUnsupportedSize", err)
	}

	_, _, err = execute(t, "hash", "--buffer-size", "-1", "foo")
	requireCategory(t, err, cli.CategoryValidation)

	_, _, err = execute(t, "hash", "foo", "bar")
	requireCategory(t, err, cli.CategoryValidation)
}

func TestMatch(t *testing.T) {
	stdout, _, err := execute(t, "match", "#ff0000")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if stdout != "#ff816e\n" {
		t.Errorf("match #ff0000 = %q, want %q", stdout, "#ff816e\n")
	}
}

func TestMatch_Check(t *testing.T) {
	stdout, stderr, err := execute(t, "match", "--check", "#ff0000")
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("match --check #ff0000 error = %v, want exit code 1", err)
	}
	if stdout != "#ff816e\n" {
		t.Errorf("stdout = %q, want the matched color", stdout)
	}
	if !strings.Contains(stderr, "outside the vivid band") {
		t.Errorf("stderr = %q, want an explanation", stderr)
	}

	stdout, _, err = execute(t, "match", "--check", "#1db7d6")
	if err != nil {
		t.Fatalf("match --check #1db7d6: %v", err)
	}
	if stdout != "#1db7d6\n" {
		t.Errorf("in-band color changed: %q", stdout)
	}
}

func TestMatch_JSON(t *testing.T) {
	stdout, _, err := execute(t, "match", "--json", "#ff0000")
	if err != nil {
		t.Fatalf("match --json: %v", err)
	}
	var result matchResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if result.InBand {
		t.Error("pure red reported in band")
	}
	if result.Input.Hex != "#ff0000" || result.Match.Hex != "#ff816e" {
		t.Errorf("input %q match %q, want #ff0000 and #ff816e", result.Input.Hex, result.Match.Hex)
	}
	// Pure red measures tone 53.2, below the band, so it rises to the floor.
	if result.Match.Tone != material.ToneMin {
		t.Errorf("match tone = %v, want %v", result.Match.Tone, material.ToneMin)
	}
	if result.Match.Hue != result.Input.Hue || result.Match.Chroma != result.Input.Chroma {
		t.Errorf("match (hue %v, chroma %v) moved from input (hue %v, chroma %v)",
			result.Match.Hue, result.Match.Chroma, result.Input.Hue, result.Input.Chroma)
	}
}

func TestMatch_InvalidColor(t *testing.T) {
	for _, input := range []string{"red", "#zzzzzz", ""} {
		_, _, err := execute(t, "match", input)
		requireCategory(t, err, cli.CategoryValidation)
		if !errors.Is(err, material.ErrInvalidColor) {
			t.Errorf("match %q error = %v, want ErrInvalidColor", input, err)
		}
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"chain", "foo", "hello"}, "foo: hello\n"},
		{[]string{"chain", "foo.bar.baz", "hello", "world"}, "foo-bar-baz: hello world\n"},
	}
	for _, test := range tests {
		stdout, _, err := execute(t, test.args...)
		if err != nil {
			t.Fatalf("%v: %v", test.args, err)
		}
		if stdout != test.want {
			t.Errorf("%v = %q, want %q", test.args, stdout, test.want)
		}
	}
}

func TestChain_Log(t *testing.T) {
	stdout, stderr, err := execute(t, "chain", "--log", "http-server", "started")
	if err != nil {
		t.Fatalf("chain --log: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(stderr), &record); err != nil {
		t.Fatalf("decode log record %q: %v", stderr, err)
	}
	if record["msg"] != "started" || record["namespace"] != "http-server" || record["level"] != "INFO" {
		t.Errorf("log record = %v", record)
	}
}

func TestChain_RequiresMessage(t *testing.T) {
	_, _, err := execute(t, "chain", "foo")
	requireCategory(t, err, cli.CategoryValidation)
}

func TestPreview(t *testing.T) {
	stdout, _, err := execute(t, "preview", "foo", "bar")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("preview printed %d lines, want 3:\n%s", len(lines), stdout)
	}
	if !strings.HasPrefix(lines[0], "NAMESPACE  SWATCH  HEX") {
		t.Errorf("header = %q", lines[0])
	}
	want := "foo        " + strings.Repeat(" ", swatchWidth) + "  #1db7d6  217.61  48.89   68.73"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
	if !strings.Contains(lines[2], "#67be13") {
		t.Errorf("row = %q, want bar's color", lines[2])
	}
}

func TestPreview_ThemedTrueColor(t *testing.T) {
	path := writeConfig(t, "color_profile: truecolor\n")
	stdout, _, err := execute(t, "preview", "--config", path, "--path", "--theme", "foo", "foo.bar")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(stdout, "48;2;0;195;84") {
		t.Errorf("output %q has no #00c354 swatch", stdout)
	}
	if !strings.Contains(ansi.Strip(stdout), "foo.bar") {
		t.Errorf("output %q does not name foo.bar", stdout)
	}
}

func TestScheme_Text(t *testing.T) {
	stdout, _, err := execute(t, "scheme", "foo")
	if err != nil {
		t.Fatalf("scheme: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if lines[0] != "foo tonal_spot (light, source #1db7d6)" {
		t.Errorf("title = %q", lines[0])
	}
	if len(lines) != 12 {
		t.Fatalf("scheme printed %d lines, want a title and 11 roles:\n%s", len(lines), stdout)
	}
	if !strings.HasPrefix(lines[1], "  primary ") || !strings.HasSuffix(lines[1], "tone 40") {
		t.Errorf("primary row = %q", lines[1])
	}
}

func TestScheme_JSON(t *testing.T) {
	stdout, _, err := execute(t, "scheme", "--json", "--variant", "vibrant", "--dark", "foo")
	if err != nil {
		t.Fatalf("scheme --json: %v", err)
	}
	var result schemeResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if result.Variant != "vibrant" || !result.Dark || result.Source != "#1db7d6" {
		t.Errorf("result = %s dark=%v source %s, want vibrant dark #1db7d6", result.Variant, result.Dark, result.Source)
	}
	if len(result.Roles) != 11 || result.Roles[0].Name != "primary" {
		t.Fatalf("roles = %+v", result.Roles)
	}
	if result.Roles[0].Tone != 80 {
		t.Errorf("dark primary tone = %v, want 80", result.Roles[0].Tone)
	}
	if len(result.Palettes) != 6 {
		t.Errorf("got %d palettes, want 6", len(result.Palettes))
	}
}

func TestScheme_VibrantKeyColors(t *testing.T) {
	stdout, _, err := execute(t, "scheme", "--json", "--variant", "vibrant", "--dark", "--source-as-primary", "foo")
	if err != nil {
		t.Fatalf("scheme --json: %v", err)
	}
	var result schemeResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	want := map[string]string{
		"primary":         "#1db7d6",
		"secondary":       "#5a7b90",
		"tertiary":        "#577aa2",
		"neutral":         "#6d797d",
		"neutral_variant": "#6a7a7f",
	}
	for name, wantKey := range want {
		if got := result.Palettes[name].KeyColor; got != wantKey {
			t.Errorf("%s key_color = %s, want %s", name, got, wantKey)
		}
	}
}

func TestScheme_ConfigDefaultsAndFlags(t *testing.T) {
	path := writeConfig(t, "scheme:\n  variant: neutral\n  dark: true\n  source_as_primary: true\n")

	stdout, _, err := execute(t, "scheme", "--config", path, "--json", "foo")
	if err != nil {
		t.Fatalf("scheme: %v", err)
	}
	var result schemeResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if result.Variant != "neutral" || !result.Dark {
		t.Errorf("config defaults not applied: %s dark=%v", result.Variant, result.Dark)
	}
	if got := result.Palettes["primary"].KeyColor; got != "#1db7d6" {
		t.Errorf("source-as-primary key color = %s, want #1db7d6", got)
	}

	stdout, _, err = execute(t, "scheme", "--config", path, "--json", "--dark=false", "--variant", "tonal_spot", "foo")
	if err != nil {
		t.Fatalf("scheme with flags: %v", err)
	}
	result = schemeResult{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if result.Variant != "tonal_spot" || result.Dark {
		t.Errorf("flags did not override config: %s dark=%v", result.Variant, result.Dark)
	}
}

func TestScheme_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown variant", []string{"scheme", "--variant", "pastel", "foo"}},
		{"contrast out of range", []string{"scheme", "--contrast", "2", "foo"}},
		{"no namespace", []string{"scheme"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := execute(t, test.args...)
			requireCategory(t, err, cli.CategoryValidation)
		})
	}
}

func TestBrand(t *testing.T) {
	stdout, _, err := execute(t, "brand", "--child", "bar", "foo", "#ff0000")
	if err != nil {
		t.Fatalf("brand: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("brand printed %d lines, want 6:\n%s", len(lines), stdout)
	}
	want := []string{"before", "  foo: #1db7d6", "  foo-bar: #00c354", "after", "  foo: #ff816e"}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
	if !strings.HasPrefix(lines[5], "  foo-bar: #") || lines[5] == "  foo-bar: #00c354" {
		t.Errorf("child after branding = %q, want a new color", lines[5])
	}
}

func TestBrand_DefaultChildren(t *testing.T) {
	stdout, _, err := execute(t, "brand", "foo", "#ff0000")
	if err != nil {
		t.Fatalf("brand: %v", err)
	}
	for _, prefix := range []string{"  foo-api: ", "  foo-worker: "} {
		if strings.Count(stdout, prefix) != 2 {
			t.Errorf("output does not show %q before and after:\n%s", prefix, stdout)
		}
	}
}

func TestBrand_Unclamped(t *testing.T) {
	path := writeConfig(t, "clamp_brands: false\n")
	stdout, _, err := execute(t, "brand", "--config", path, "--child", "bar", "foo", "#ff0000")
	if err != nil {
		t.Fatalf("brand: %v", err)
	}
	if !strings.Contains(stdout, "after\n  foo: #ff0000\n") {
		t.Errorf("unclamped brand not applied as given:\n%s", stdout)
	}
}

func TestBrand_InvalidColor(t *testing.T) {
	_, _, err := execute(t, "brand", "foo", "crimson")
	requireCategory(t, err, cli.CategoryValidation)
	if !errors.Is(err, material.ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor", err)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, "nscolor ") {
		t.Errorf("version = %q", stdout)
	}

	stdout, _, err = execute(t, "version", "--full")
	if err != nil {
		t.Fatalf("version --full: %v", err)
	}
	if !strings.Contains(stdout, "Color algorithm: fnv1a32-hct-p5") {
		t.Errorf("version --full = %q, want the color algorithm", stdout)
	}
}
