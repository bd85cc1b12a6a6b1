// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv reads a layer from vars using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags defined on
// [Settings] and its nested types. Lookups are exact-case: only vars is
// consulted, never the process environment directly.
//
// Every variable present in vars is recorded in the layer keys, empty ones
// included. Values that cannot be converted to their field type are
// reported as [*CoercionError]s joined into one error.
func parseEnv(vars map[string]string) (*layer, error) {
	l := newLayer()
	err := env.ParseWithOptions(l.Settings, env.Options{
		Environment: vars,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(false): parseBool,
		},
		OnSet: func(key string, _ any, _ bool) {
			if _, ok := vars[key]; ok {
				l.keys[key] = struct{}{}
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", coercionErrors(err))
	}

	if err := applyEmptyValues(l, vars); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return l, nil
}

// applyEmptyValues handles variables that are set to an empty string, which
// caarlos0/env skips. Strings stay empty and origins become an empty list.
// Any other type cannot be empty.
func applyEmptyValues(l *layer, vars map[string]string) error {
	fields := settingsFields(l.Settings)

	var errs []error
	for _, key := range slices.Sorted(maps.Keys(l.keys)) {
		if vars[key] != "" {
			continue
		}

		field := fields[key]
		switch {
		case field.Kind() == reflect.String:
		case field.Type() == reflect.TypeOf(Origins{}):
			field.Set(reflect.ValueOf(Origins{}))
		default:
			errs = append(errs, &CoercionError{
				Key:  key,
				Type: typeName(field.Type()),
				Err:  errors.New("empty value"),
			})
		}
	}

	return errors.Join(errs...)
}

// environment merges the env file under the process environment: a
// variable from the file is used only when the process does not define it.
//
// A missing file is ignored unless required is set.
func environment(environ []string, envFile string, required bool) (map[string]string, error) {
	vars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || required {
			return nil, fmt.Errorf("error reading env file %q: %w", envFile, err)
		}
		vars = make(map[string]string)
	}

	for key, value := range environToMap(environ) {
		vars[key] = value
	}

	return vars, nil
}

func environToMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[key] = value
	}

	return vars
}

// parseBool accepts the spellings 1/0, t/f, true/false, yes/no, on/off and
// y/n in any letter case.
func parseBool(v string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}

	return nil, fmt.Errorf("invalid boolean %q", v)
}

// coercionErrors rewrites env.ParseError values into [*CoercionError]s that
// name the environment variable instead of the struct field.
func coercionErrors(err error) error {
	var aggregate env.AggregateError
	if !errors.As(err, &aggregate) {
		return err
	}

	errs := make([]error, 0, len(aggregate.Errors))
	for _, e := range aggregate.Errors {
		var parseErr env.ParseError
		if !errors.As(e, &parseErr) {
			errs = append(errs, e)
			continue
		}

		errs = append(errs, &CoercionError{
			Key:  envKey(reflect.TypeOf(Settings{}), "", parseErr.Name),
			Type: typeName(parseErr.Type),
			Err:  parseErr.Err,
		})
	}

	return errors.Join(errs...)
}

// envKey resolves the full environment variable name of the struct field
// called field, following envPrefix tags of nested structs.
func envKey(t reflect.Type, prefix, field string) string {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type.Kind() == reflect.Struct {
			if key := envKey(sf.Type, prefix+sf.Tag.Get("envPrefix"), field); key != "" {
				return key
			}
			continue
		}

		if sf.Name == field {
			return prefix + sf.Tag.Get("env")
		}
	}

	return ""
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}

	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Slice:
		return "a list of strings"
	default:
		return "a " + t.String()
	}
}
