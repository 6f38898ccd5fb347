// Package log provides the leveled logging used across tmux-scribe.
// The log messages are intended to be user-facing,
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

// Logger posts messages to an io.Writer, one line per message.
type Logger struct{ sl *slog.Logger }

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return &Logger{slog.New(&handler{w: w, level: Info})}
}

// WithLevel builds a new logger that posts messages at or above the given
// level. The destination is unchanged.
func (l *Logger) WithLevel(lvl Level) *Logger {
	h, ok := l.sl.Handler().(*handler)
	if !ok {
		return l
	}
	out := *h
	out.level = lvl
	return &Logger{slog.New(&out)}
}

// WithName builds a new logger whose messages carry the provided name as a
// prefix. The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	h, ok := l.sl.Handler().(*handler)
	if !ok {
		return l
	}
	out := *h
	if len(out.name) > 0 {
		out.name += "." + name
	} else {
		out.name = name
	}
	return &Logger{slog.New(&out)}
}

// Log posts a message at the given level.
func (l *Logger) Log(lvl Level, format string, args ...interface{}) {
	ctx := context.Background()
	if !l.sl.Enabled(ctx, lvl) {
		return
	}
	l.sl.Log(ctx, lvl, fmt.Sprintf(format, args...))
}

// Debugf posts a message at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(Debug, format, args...)
}

// Infof posts a message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(Info, format, args...)
}

// Errorf posts a message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(Error, format, args...)
}
