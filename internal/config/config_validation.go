// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// requiredKeys lists the variables that some source must supply. An empty
// value counts as supplied.
var requiredKeys = []string{"DATABASE_URL", "JWT_SECRET"}

// validate checks that every required key was supplied by at least one
// source. All missing keys are reported at once in a [*MissingValueError].
func (cfg *Settings) validate(supplied map[string]struct{}) error {
	var missing []string

	for _, key := range requiredKeys {
		if _, ok := supplied[key]; !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return &MissingValueError{Keys: missing}
	}

	return nil
}
