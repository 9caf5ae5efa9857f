// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used by the task manager client.
//
// The client reserves stdout for human-readable diagnostics, so
// [NewClientLogger] writes JSON entries to a log file instead.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFileName is created next to the executable when no path is set.
const DefaultLogFileName = "logs"

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

type options struct {
	level  zerolog.Level
	output io.Writer
	path   string
}

// Option customises a logger constructor.
type Option func(*options)

// WithLevel sets the minimum level. Unknown names fall back to info.
func WithLevel(level string) Option {
	return func(o *options) {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		o.level = lvl
	}
}

// WithOutput overrides the sink.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithFile sets the log file used by [NewClientLogger].
func WithFile(path string) Option {
	return func(o *options) { o.path = strings.TrimSpace(path) }
}

// NewLogger constructs a *Logger for role writing JSON to stdout unless
// another output is given.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.DebugLevel, output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return build(role, o)
}

// NewClientLogger constructs a *Logger writing to a log file. The file is
// DefaultLogFileName next to the executable unless [WithFile] is given; if it
// cannot be opened the logger falls back to stderr.
func NewClientLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	if o.output == nil {
		o.output = openLogFile(o.path)
	}
	return build(role, o)
}

func openLogFile(path string) io.Writer {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
	}
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return logFile
}

func build(role string, o options) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(o.output).Level(o.level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a *Logger inheriting all fields of l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx by zerolog's WithContext,
// or zerolog's global logger when none is attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
