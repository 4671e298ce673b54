// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the qes-vault server, the qes CLI and the
// batch workers.
//
// *Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
// Request-scoped loggers travel in the context: transports attach one with
// ForTrace and WithContext, handlers and services read it back with
// FromContext or FromRequest.
//
// Nothing in this module logs passwords, derived keys or recovered plaintext.
// Call sites log sizes, layer counts and names instead.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the log field carrying the request trace id.
const TraceIDField = "trace_id"

type Logger struct {
	zerolog.Logger
}

// NewLogger builds the server logger: JSON to stdout, every level enabled,
// with "role", timestamp and a "func" caller field holding the fully
// qualified function name instead of file:line.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	useFuncNameCaller()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs the *Logger used by the qes CLI.
//
// CLI output belongs to the user, so diagnostics go to stderr in zerolog's
// human-readable console format. Only warnings and errors are shown unless
// verbose is set.
func NewClientLogger(role string, verbose bool) *Logger {
	return newClientLogger(role, verbose, os.Stderr)
}

func newClientLogger(role string, verbose bool, w io.Writer) *Logger {
	useFuncNameCaller()

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

func useFuncNameCaller() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ForTrace returns a child logger that stamps every entry with traceID.
// The receiver is left unchanged.
func (l *Logger) ForTrace(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest returns the logger attached to the request context, see
// FromContext.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with WithContext. Without
// one, zerolog's fallback logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
