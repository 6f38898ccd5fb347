// Package iotest provides IO-related testing utilities.
package iotest

import (
	"bytes"
	"io"
)

// Logger is the destination for messages from the Writer.
// It is satisfied by *testing.T and *testing.B.
type Logger interface {
	Logf(format string, args ...interface{})
}

// Writer builds an io.Writer that reports everything written to it to the
// given test logger.
func Writer(t Logger) io.Writer {
	return writer{t}
}

type writer struct{ t Logger }

func (w writer) Write(b []byte) (int, error) {
	w.t.Logf("%s", bytes.TrimSuffix(b, []byte("\n")))
	return len(b), nil
}
