// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a FlagSet bound to the tagged fields of
// params, a pointer to a struct. It panics on a malformed params type,
// which is a programming error.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a flag for each tagged field of params.
//
// Tags:
//
//   - flag:"name" or flag:"name,n" sets the long name and optional
//     shorthand. Untagged fields are skipped.
//   - desc:"text" is the help text.
//   - default:"value" is parsed according to the field type.
//
// Supported field types are string, bool, int and []string. Embedded
// structs are bound recursively, so shared flag groups compose by
// embedding.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStructFields(value.Elem(), flagSet)
}

// flagSpec is one parsed struct tag.
type flagSpec struct {
	name, shorthand, usage, fallback string
}

func bindStructFields(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	for _, field := range reflect.VisibleFields(structValue.Type()) {
		if len(field.Index) > 1 {
			// Promoted fields are bound when their embedded struct is.
			continue
		}
		value := structValue.Field(field.Index[0])

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStructFields(value, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag, tagged := field.Tag.Lookup("flag")
		if !tagged || tag == "" {
			continue
		}
		if !field.IsExported() {
			return fmt.Errorf("field %s: flag fields must be exported", field.Name)
		}

		spec := flagSpec{usage: field.Tag.Get("desc"), fallback: field.Tag.Get("default")}
		spec.name, spec.shorthand, _ = strings.Cut(tag, ",")
		if err := spec.bind(value.Addr().Interface(), flagSet); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

func (s flagSpec) bind(target any, flagSet *pflag.FlagSet) error {
	switch pointer := target.(type) {
	case *string:
		flagSet.StringVarP(pointer, s.name, s.shorthand, s.fallback, s.usage)
	case *[]string:
		var fallback []string
		if s.fallback != "" {
			fallback = strings.Split(s.fallback, ",")
		}
		flagSet.StringSliceVarP(pointer, s.name, s.shorthand, fallback, s.usage)
	case *bool:
		fallback, err := parseFallback(s, strconv.ParseBool)
		if err != nil {
			return err
		}
		flagSet.BoolVarP(pointer, s.name, s.shorthand, fallback, s.usage)
	case *int:
		fallback, err := parseFallback(s, strconv.Atoi)
		if err != nil {
			return err
		}
		flagSet.IntVarP(pointer, s.name, s.shorthand, fallback, s.usage)
	default:
		return fmt.Errorf("--%s: unsupported type %T", s.name, target)
	}
	return nil
}

// parseFallback parses the default tag, or returns the zero value when
// the tag is absent.
func parseFallback[T any](s flagSpec, parse func(string) (T, error)) (T, error) {
	var zero T
	if s.fallback == "" {
		return zero, nil
	}
	parsed, err := parse(s.fallback)
	if err != nil {
		return zero, fmt.Errorf("default for --%s: %w", s.name, err)
	}
	return parsed, nil
}
