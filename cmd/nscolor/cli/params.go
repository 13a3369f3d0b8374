// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams returns a [pflag.FlagSet] named name with one flag per
// tagged field of params, which must point to a struct. A malformed
// params struct is a programming error and panics.
//
// Commands keep params in a closure so the bound fields are filled in
// by the time Run is called:
//
//	var params struct {
//	    GlobalParams
//	    ColorFormat
//	}
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("resolve", &params) },
//	    Run:   func(args []string) error { /* read params.Format */ },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags adds a flag to flagSet for every field of *params carrying a
// flag tag. Embedded structs are walked, so a parameter group such as
// --config/--verbose or --format is declared once and embedded by every
// command that takes it.
//
// Tags:
//
//   - flag:"name" or flag:"name,n": long name and optional shorthand.
//   - desc:"...": help text.
//   - default:"...": default value in the field's type. Slices take a
//     comma-separated list.
//   - choices:"a,b,c": string fields only. Any other value is rejected
//     while parsing, and the default must be one of the choices.
//
// Field types: string, bool, int, float64, []string.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(value.Elem(), flagSet)
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()
	for i := range structType.NumField() {
		field := structType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStruct(structValue.Field(i), flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag, ok := field.Tag.Lookup("flag")
		if !ok || tag == "" {
			continue
		}
		name, shorthand, _ := strings.Cut(tag, ",")
		decl := flagDecl{
			name:         name,
			shorthand:    shorthand,
			usage:        field.Tag.Get("desc"),
			defaultValue: field.Tag.Get("default"),
		}
		if choices := field.Tag.Get("choices"); choices != "" {
			decl.choices = strings.Split(choices, ",")
		}
		if err := decl.bind(structValue.Field(i), flagSet); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// flagDecl is one field's flag declaration, read from its tags.
type flagDecl struct {
	name         string
	shorthand    string
	usage        string
	defaultValue string
	choices      []string
}

func (d flagDecl) bind(field reflect.Value, flagSet *pflag.FlagSet) error {
	if !field.CanAddr() {
		return fmt.Errorf("--%s: field is not addressable", d.name)
	}
	if d.choices != nil && field.Kind() != reflect.String {
		return fmt.Errorf("--%s: choices requires a string field, got %s", d.name, field.Type())
	}

	switch target := field.Addr().Interface().(type) {
	case *string:
		if d.choices == nil {
			flagSet.StringVarP(target, d.name, d.shorthand, d.defaultValue, d.usage)
			return nil
		}
		if !slices.Contains(d.choices, d.defaultValue) {
			return fmt.Errorf("--%s: default %q is not one of %s", d.name, d.defaultValue, strings.Join(d.choices, ", "))
		}
		*target = d.defaultValue
		flagSet.VarP(&choiceValue{target: target, choices: d.choices}, d.name, d.shorthand, d.usage)
	case *bool:
		value, err := parseDefault(d, false, strconv.ParseBool)
		if err != nil {
			return err
		}
		flagSet.BoolVarP(target, d.name, d.shorthand, value, d.usage)
	case *int:
		value, err := parseDefault(d, 0, strconv.Atoi)
		if err != nil {
			return err
		}
		flagSet.IntVarP(target, d.name, d.shorthand, value, d.usage)
	case *float64:
		value, err := parseDefault(d, 0, func(text string) (float64, error) {
			return strconv.ParseFloat(text, 64)
		})
		if err != nil {
			return err
		}
		flagSet.Float64VarP(target, d.name, d.shorthand, value, d.usage)
	case *[]string:
		var value []string
		if d.defaultValue != "" {
			value = strings.Split(d.defaultValue, ",")
		}
		flagSet.StringSliceVarP(target, d.name, d.shorthand, value, d.usage)
	default:
		return fmt.Errorf("--%s: unsupported type %s", d.name, field.Type())
	}
	return nil
}

// parseDefault parses the default tag, or returns zero when it is empty.
func parseDefault[T any](d flagDecl, zero T, parse func(string) (T, error)) (T, error) {
	if d.defaultValue == "" {
		return zero, nil
	}
	value, err := parse(d.defaultValue)
	if err != nil {
		return zero, fmt.Errorf("default for --%s: %w", d.name, err)
	}
	return value, nil
}

// choiceValue is a string flag restricted to a fixed set of values.
type choiceValue struct {
	target  *string
	choices []string
}

func (v *choiceValue) String() string {
	if v.target == nil {
		return ""
	}
	return *v.target
}

func (v *choiceValue) Set(value string) error {
	if !slices.Contains(v.choices, value) {
		return fmt.Errorf("must be one of %s", strings.Join(v.choices, ", "))
	}
	*v.target = value
	return nil
}

func (v *choiceValue) Type() string { return "string" }
