package log

import "bytes"

// Writer is an io.Writer that forwards everything written to it to a
// Logger, splitting writes across newlines into separate log entries.
// Spawned subprocesses use it as their stderr so that their complaints
// land in our diagnostics.
type Writer struct {
	Log   *Logger
	Level Level

	buf bytes.Buffer
}

func (w *Writer) Write(bs []byte) (int, error) {
	total := len(bs)
	for {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			// Partial line. Hold it until the next write or Close.
			w.buf.Write(bs)
			return total, nil
		}

		w.buf.Write(bs[:idx])
		// Empty lines mid-stream are posted as-is so that "foo\n\nbar"
		// loses nothing.
		w.Log.Log(w.Level, "%s", w.buf.Bytes())
		w.buf.Reset()
		bs = bs[idx+1:]
	}
}

// Close flushes any buffered partial line to the logger. Trailing newlines
// do not produce an extra empty entry.
func (w *Writer) Close() error {
	if w.buf.Len() > 0 {
		w.Log.Log(w.Level, "%s", w.buf.Bytes())
		w.buf.Reset()
	}
	return nil
}
