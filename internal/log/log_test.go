package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder is a slog.Handler that captures posted messages verbatim.
type recorder struct{ messages []string }

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.messages = append(r.messages, rec.Message)
	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }

func (r *recorder) WithGroup(string) slog.Handler { return r }

func newRecording(r *recorder) *Logger { return &Logger{slog.New(r)} }

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf)

	logger.Debugf("quiet %v", 1)
	assert.Empty(t, buf.String(), "debug must be dropped at info level")

	logger.Infof("hello %v", "world")
	assert.Contains(t, buf.String(), "hello world")

	logger.Errorf("oh no")
	assert.Contains(t, buf.String(), "oh no")
}

func TestLoggerWithLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf).WithLevel(Debug)

	logger.Debugf("loud and clear")
	assert.Contains(t, buf.String(), "loud and clear")
}

func TestLoggerWithName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf).WithName("tmux")

	logger.Infof("new window")
	assert.Contains(t, buf.String(), "tmux:")
	assert.Contains(t, buf.String(), "new window")

	buf.Reset()
	logger.WithName("opt").Infof("loaded")
	assert.Contains(t, buf.String(), "tmux.opt:")
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	// Must not panic or write anywhere.
	Discard.Infof("into the void")
	Discard.WithLevel(Debug).Debugf("still nothing")
	Discard.WithName("void").Errorf("nothing at all")
}
