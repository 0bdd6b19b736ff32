// Package log provides a leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Error = slog.LevelError
)

// Logger logs formatted messages at different levels.
type Logger struct {
	l    *slog.Logger
	w    io.Writer // nil for Discard
	lvl  Level
	name string
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return newLogger(w, Info, "")
}

func newLogger(w io.Writer, lvl Level, name string) *Logger {
	h := &handler{W: w, Level: lvl, Name: name}
	return &Logger{l: slog.New(h), w: w, lvl: lvl, name: name}
}

// WithLevel builds a new logger that logs messages at or above the
// provided level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	if l.w == nil {
		return l
	}
	return newLogger(l.w, lvl, l.name)
}

// WithName builds a new logger with the provided name appended to the
// logger's own name. The name is reported with every message. The
// returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	if l.w == nil {
		return l
	}
	if len(l.name) > 0 {
		name = l.name + "." + name
	}
	return newLogger(l.w, l.lvl, name)
}

// Debugf logs a message at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(Debug, format, args...)
}

// Infof logs a message at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(Info, format, args...)
}

// Errorf logs a message at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(Error, format, args...)
}

// Log logs a message at the provided level.
func (l *Logger) Log(lvl Level, format string, args ...interface{}) {
	ctx := context.Background()
	if !l.l.Enabled(ctx, lvl) {
		return
	}
	l.l.Log(ctx, lvl, fmt.Sprintf(format, args...))
}
