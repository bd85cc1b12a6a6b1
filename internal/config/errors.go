package config

import (
	"errors"
	"fmt"
	"strings"
)

// Load errors. Both kinds are fatal to startup and are never retried.
var (
	// ErrMissingRequired indicates that a required value was not provided
	// by any source. Returned wrapped in a [*MissingValueError].
	ErrMissingRequired = errors.New("missing required configuration value")
	// ErrTypeCoercion indicates that a provided value cannot be converted to
	// the declared type of its field. Returned wrapped in a [*CoercionError].
	ErrTypeCoercion = errors.New("configuration value has invalid type")
	// ErrUnsupportedAlgorithm indicates that JWT_ALGORITHM does not name a
	// signing method usable for issuing tokens.
	ErrUnsupportedAlgorithm = errors.New("unsupported JWT algorithm")
)

// MissingValueError lists every required variable that is absent after all
// sources were consulted.
type MissingValueError struct {
	Keys []string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequired, strings.Join(e.Keys, ", "))
}

// Is reports ErrMissingRequired as the error kind.
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingRequired
}

// CoercionError describes a value that could not be converted to the type
// of the field it was supplied for.
type CoercionError struct {
	// Key is the environment variable (or file key) that held the value.
	Key string
	// Type is the human-readable expected type, e.g. "integer".
	Type string
	Err  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: %s must be %s: %v", ErrTypeCoercion, e.Key, e.Type, e.Err)
}

// Is reports ErrTypeCoercion as the error kind.
func (e *CoercionError) Is(target error) bool {
	return target == ErrTypeCoercion
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
