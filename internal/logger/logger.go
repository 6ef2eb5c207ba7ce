// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for envresolve.
//
// Every logger writes to an explicit writer, stderr for the CLI, so that
// command output written to stdout (a rendered env file, a substituted
// manifest) stays machine-readable. Request-scoped loggers are carried in the
// context and recovered with FromContext or FromRequest.
//
// Secret values must never reach a Logger. A *config.Set logged with Object
// redacts its own secret values.
package logger

import (
	"context"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats accepted by [New].
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Options selects the level and the output format of a Logger.
type Options struct {
	// Level is a zerolog level name. Unknown or empty names mean info.
	Level string

	// Format is FormatJSON (default) or FormatConsole.
	Format string
}

// New constructs a *Logger for the given role label (the command name:
// "check", "inspect", ...).
//
// JSON entries carry a "role" field, a timestamp and a "func" caller field
// with the fully-qualified function name instead of file:line. Console
// entries are human-oriented and drop the caller.
func New(w io.Writer, role string, opts Options) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	ctx := zerolog.New(output(w, opts.Format)).Level(level(opts.Level)).With().
		Str("role", role).
		Timestamp()
	if opts.Format != FormatConsole {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

func output(w io.Writer, format string) io.Writer {
	if format != FormatConsole {
		return w
	}

	return zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
}

func level(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithEnvFile returns a child logger tagging every entry with the env file
// being resolved.
func (l *Logger) WithEnvFile(path string) *Logger {
	return &Logger{l.With().Str("env_file", path).Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// If none is attached zerolog's disabled logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
