// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Declared defaults applied to every field that no source provided.
const (
	DefaultJWTAlgorithm       = "HS256"
	DefaultJWTExpirationHours = 24
	DefaultOpenAIBaseURL      = "https://api.openai.com/v1"
	DefaultCORSOrigin         = "http://localhost:3000"
	DefaultEnvironment        = "development"
	DefaultServerAddress      = "0.0.0.0:8000"
	DefaultEnvFile            = ".env"

	// EnvironmentProduction is the deployment name that switches the
	// service to production behavior (quieter logging).
	EnvironmentProduction = "production"
)

// Settings is the top-level configuration record of the hopwhistle API.
// It is built once by [Load] and must not be mutated afterwards; consumers
// receive it by pointer and treat it as read-only.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       exact, case-sensitive environment variable name.
type Settings struct {
	// Database holds the relational database connection settings.
	Database Database

	// Auth holds JWT signing parameters.
	Auth Auth `envPrefix:"JWT_"`

	// AI holds credentials and endpoints of the AI providers.
	AI AI

	// Spaces holds the object-storage (DigitalOcean Spaces) settings.
	Spaces Spaces `envPrefix:"SPACES_"`

	// Server holds inbound transport settings.
	Server Server `envPrefix:"SERVER_"`

	// CORSOrigins is the ordered list of origins allowed to make
	// cross-origin requests. Accepts a JSON array or a comma-separated list.
	// Env: CORS_ORIGINS
	CORSOrigins Origins `env:"CORS_ORIGINS"`

	// Environment is the deployment environment name
	// (e.g. "development", "staging", "production").
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`

	// EnvFile is the path of the environment-definition file consulted for
	// variables absent from the process environment.
	// Populated via the ENV_FILE environment variable or the --env-file flag.
	EnvFile string `env:"ENV_FILE"`
}

// Database holds connection settings for the relational database backend.
type Database struct {
	// URL is the PostgreSQL connection string. Required.
	// Env: DATABASE_URL
	URL string `env:"DATABASE_URL"`

	// EnableTimescale turns on TimescaleDB hypertables for time-series data.
	// Env: ENABLE_TIMESCALE
	EnableTimescale bool `env:"ENABLE_TIMESCALE"`
}

// Auth holds the parameters used by the auth layer to sign tokens.
type Auth struct {
	// Secret is the key used to sign and verify JWT tokens. Required.
	// Env: JWT_SECRET
	Secret string `env:"SECRET"`

	// Algorithm is the JWT signing algorithm identifier (e.g. "HS256").
	// Env: JWT_ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// ExpirationHours is the token lifetime in whole hours.
	// Env: JWT_EXPIRATION_HOURS
	ExpirationHours int `env:"EXPIRATION_HOURS"`
}

// AI holds the AI-provider credentials.
type AI struct {
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`
	DeepSeekAPIKey string `env:"DEEPSEEK_API_KEY"`
}

// Spaces holds the S3-compatible object storage settings. All fields are
// optional; an empty Endpoint means object storage is disabled.
type Spaces struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"KEY"`
	SecretKey string `env:"SECRET"`
	Bucket    string `env:"BUCKET"`
}

// Server holds network settings for the HTTP server.
type Server struct {
	// Address is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// IsProduction reports whether the service runs in the production
// environment.
func (s *Settings) IsProduction() bool {
	return s.Environment == EnvironmentProduction
}

// TokenTTL returns the token lifetime as a [time.Duration].
func (a Auth) TokenTTL() time.Duration {
	return time.Duration(a.ExpirationHours) * time.Hour
}

// defaultSettings returns a fresh Settings holding every declared default.
// Required fields are left empty.
func defaultSettings() *Settings {
	return &Settings{
		Auth: Auth{
			Algorithm:       DefaultJWTAlgorithm,
			ExpirationHours: DefaultJWTExpirationHours,
		},
		AI: AI{
			OpenAIBaseURL: DefaultOpenAIBaseURL,
		},
		Server: Server{
			Address: DefaultServerAddress,
		},
		CORSOrigins: defaultOrigins(),
		Environment: DefaultEnvironment,
		EnvFile:     DefaultEnvFile,
	}
}

// Load builds the settings from all available sources in the following
// priority order (the highest source that supplied a key wins, even with a
// zero value such as false, 0 or an empty list):
//  1. Command-line flags parsed from args
//  2. Process environment variables
//  3. The environment file (".env" unless overridden)
//  4. The JSON or YAML config file, when one is named
//  5. Declared defaults
//
// Returns a fully populated *Settings or an error when a source cannot be
// read, a value cannot be coerced to its declared type, or a required
// value is missing.
func Load(args []string) (*Settings, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv(os.Environ()).
		withFile().
		build()
}

// GetSettings loads the settings using the process arguments.
func GetSettings() (*Settings, error) {
	return Load(os.Args[1:])
}
