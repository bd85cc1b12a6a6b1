// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the hopwhistle API. The process logger
// is built once in main, narrowed to the deployment environment after the
// settings load, and handed to the HTTP layer, which stores a per-request
// child carrying the trace id in the request context.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the JSON logger passed between the server components.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the stdout logger of the process named role
// ("hopwhistle-api"). Every entry carries role, a timestamp and the calling
// function under "func". Debug stays enabled until [Logger.ForEnvironment]
// is applied, so settings loading itself can be traced.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// LevelFor returns the minimum log level for the given deployment
// environment: Info in production, Debug everywhere else.
func LevelFor(environment string) zerolog.Level {
	if environment == "production" {
		return zerolog.InfoLevel
	}

	return zerolog.DebugLevel
}

// ForEnvironment returns a child *Logger tagged with an "env" field and
// applies [LevelFor] to the global zerolog level. It is meant to be called
// once, right after the settings are loaded.
func (l *Logger) ForEnvironment(environment string) *Logger {
	zerolog.SetGlobalLevel(LevelFor(environment))

	return &Logger{l.With().Str("env", environment).Logger()}
}

// Nop returns a Logger that writes nothing. Used by handler and server
// tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so request middleware can add fields such as the
// trace id without touching the process logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request logger stored by the trace id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger stored in ctx. Without one, zerolog hands
// back its disabled logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
