// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the study-sync client and the remote store
// server. Request and operation scoped loggers travel in context.Context and
// are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so Debug, Info, Err and friends are
// available directly.
type Logger struct {
	zerolog.Logger

	// file is set only for client loggers writing to a log file.
	file *os.File
}

func init() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// NewLogger returns a debug-level JSON logger on stdout. Every entry carries
// role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return &Logger{Logger: build(os.Stdout, role)}
}

// NewClientLogger returns a logger appending to logPath, creating missing
// parent directories. An empty logPath means a "logs" file next to the
// executable. When the file cannot be opened the logger writes to stderr
// and says so in its first entry.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	file, err := openLogFile(logPath)
	if err != nil {
		l := &Logger{Logger: build(os.Stderr, role)}
		l.Warn().Err(err).Str("path", logPath).Msg("log file unavailable, logging to stderr")
		return l
	}
	return &Logger{Logger: build(file, role), file: file}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

func build(out io.Writer, role string) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// Close releases the log file of a client logger. It is a no-op otherwise.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithTraceID returns a child logger tagged with "trace_id". Child loggers
// never own the parent's log file.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{Logger: l.With().Str("trace_id", traceID).Logger()}
}

// WithComponent returns a child logger tagged with "component",
// e.g. "coordinator" or "shared-watcher".
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.With().Str("component", component).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// context logger when none is. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
