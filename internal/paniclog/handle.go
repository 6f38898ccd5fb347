// Package paniclog persists panics by writing them to the diagnostic log.
// tmux-scribe is usually invoked by an editor or document pipeline where
// stderr may never reach the user.
package paniclog

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Recover absorbs a pending panic, writes it with a stack trace to the
// given writer, and records it into the error pointer. Without a pending
// panic, the error pointer and writer are left untouched.
func Recover(err *error, w io.Writer) {
	pval := recover()
	if pval == nil {
		return
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())

	if perr, ok := pval.(error); ok {
		*err = perr
		return
	}
	*err = fmt.Errorf("panic: %v", pval)
}
