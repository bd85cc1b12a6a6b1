// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every key they supply):
//  1. Command-line flags
//  2. Environment variables (exact-case names)
//  3. The environment file, for variables the process does not define
//  4. JSON or YAML config file
//  5. Declared defaults
//
// The main entry points are [Load] and [GetSettings]. Both return an
// immutable [*Settings] that the caller passes to every consumer; the
// package keeps no global state.
package config
