package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// handler renders each record as a single colored line:
//
//	LEVEL name: message key=value ...
type handler struct {
	w     io.Writer
	level Level
	name  string
	attrs string
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level
}

const (
	_reset = "\x1b[0m"
	_bold  = "\x1b[1m"
	_dim   = "\x1b[2m"

	_boldDim          = "\x1b[2;1m"
	_brightBoldRed    = "\x1b[91;1m"
	_brightBoldYellow = "\x1b[93;1m"
	_brightBoldGreen  = "\x1b[92;1m"
)

func levelColor(lvl slog.Level) string {
	switch {
	case lvl >= slog.LevelError:
		return _brightBoldRed
	case lvl >= slog.LevelWarn:
		return _brightBoldYellow
	case lvl >= slog.LevelInfo:
		return _brightBoldGreen
	default:
		return _boldDim
	}
}

func (h *handler) Handle(_ context.Context, rec slog.Record) error {
	buf := getBuf()
	defer putBuf(buf)

	lvl, err := rec.Level.MarshalText()
	if err != nil {
		return err
	}

	buf.WriteString(levelColor(rec.Level))
	buf.Write(lvl)
	buf.WriteString(_reset)
	buf.WriteByte(' ')

	if len(h.name) > 0 {
		buf.WriteString(_dim)
		buf.WriteString(h.name)
		buf.WriteByte(':')
		buf.WriteString(_reset)
		buf.WriteByte(' ')
	}

	buf.WriteString(_bold)
	buf.WriteString(rec.Message)
	buf.WriteString(_reset)

	if len(h.attrs) > 0 {
		buf.WriteByte(' ')
		buf.WriteString(h.attrs)
	}
	rec.Attrs(func(a slog.Attr) bool {
		buf.WriteByte(' ')
		appendAttr(buf, a)
		return true
	})

	buf.WriteByte('\n')
	_, err = h.w.Write([]byte(buf.String()))
	return err
}

func appendAttr(buf *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()

	buf.WriteString(_dim)
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	buf.WriteString(_reset)

	val := a.Value.String()
	if a.Value.Kind() == slog.KindString && strings.ContainsAny(val, ` "=`) {
		val = strconv.Quote(val)
	}
	buf.WriteString(val)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	var buf strings.Builder
	buf.WriteString(out.attrs)
	for i, a := range attrs {
		if i > 0 || len(out.attrs) > 0 {
			buf.WriteByte(' ')
		}
		appendAttr(&buf, a)
	}
	out.attrs = buf.String()
	return &out
}

func (h *handler) WithGroup(name string) slog.Handler {
	out := *h
	if len(out.name) > 0 {
		out.name += "." + name
	} else {
		out.name = name
	}
	return &out
}

var _bufPool = sync.Pool{
	New: func() interface{} { return new(strings.Builder) },
}

func getBuf() *strings.Builder {
	return _bufPool.Get().(*strings.Builder)
}

func putBuf(buf *strings.Builder) {
	buf.Reset()
	_bufPool.Put(buf)
}
