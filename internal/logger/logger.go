// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the blog server. Request handlers and
// services never hold a logger of their own for request work: they take the
// one attached to the context by the HTTP middleware, so every entry carries
// the trace and user fields of the request that produced it.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON stdout logger tagged with role and emitting every
// level.
func NewLogger(role string) *Logger {
	return NewLoggerWithLevel(role, zerolog.DebugLevel)
}

// NewLoggerWithLevel is [NewLogger] with an explicit global level.
//
// Entries carry "role", a timestamp and a "func" field naming the calling
// function rather than file:line.
func NewLoggerWithLevel(role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	l := zerolog.New(os.Stdout).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// ParseLevel maps a configured level name to zerolog. Empty means debug.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.DebugLevel, nil
	}
	return zerolog.ParseLevel(level)
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields can be added without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest is FromContext(r.Context()).
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached with WithContext, or zerolog's
// disabled default logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
