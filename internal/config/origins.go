// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Origins is the ordered list of hosts allowed to make cross-origin
// requests. It implements [encoding.TextUnmarshaler] so caarlos0/env runs
// [ParseOrigins] on the raw CORS_ORIGINS value.
type Origins []string

func defaultOrigins() Origins {
	return Origins{DefaultCORSOrigin}
}

// ParseOrigins normalizes a raw origins value into an ordered list:
//  1. a []string is returned unchanged; a []any of strings (as produced by
//     JSON and YAML decoders) is converted element by element;
//  2. a string holding a JSON array is decoded and returned as-is, with no
//     trimming of its elements;
//  3. any other string (including valid JSON that is not an array) is split
//     on commas, each piece trimmed, and empty pieces dropped;
//  4. every other value, nil included, yields the default list.
//
// A list element that is not a string is reported as an error.
//
// Note: JSON that parses to a non-array (e.g. `{"a":1}`) is split as the
// original string, not interpreted, and ends up as a single origin.
func ParseOrigins(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case Origins:
		return v, nil
	case []any:
		return stringList(v)
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			if list, ok := parsed.([]any); ok {
				return stringList(list)
			}
		}
		return splitOrigins(v), nil
	default:
		return defaultOrigins(), nil
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Origins) UnmarshalText(text []byte) error {
	origins, err := ParseOrigins(string(text))
	if err != nil {
		return err
	}

	*o = origins
	return nil
}

// Allows reports whether origin is in the list. The entry "*" allows any
// origin.
func (o Origins) Allows(origin string) bool {
	if origin == "" {
		return false
	}

	for _, allowed := range o {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}

func splitOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}

func stringList(list []any) ([]string, error) {
	origins := make([]string, 0, len(list))
	for i, item := range list {
		origin, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("origin #%d is %T, not a string", i, item)
		}
		origins = append(origins, origin)
	}

	return origins, nil
}
