// Package tmuxopt loads tmux options into user-specified variables. This
// lets users keep tmux-scribe settings like the terminal command in their
// tmux configuration next to everything else.
package tmuxopt

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"strconv"
	"sync"

	"github.com/scribe-sh/tmux-scribe/internal/tmux"
	"go.uber.org/multierr"
)

// Value is a receiver for a tmux option value.
type Value interface {
	Set(value string) error
}

var _ Value = flag.Value(nil) // interface matching

// Loader loads tmux options into user-specified variables.
type Loader struct {
	Tmux tmux.Driver

	once   sync.Once
	values map[string]Value
}

func (l *Loader) init() {
	l.once.Do(func() { l.values = make(map[string]Value) })
}

// Var specifies that the given option should be loaded into the provided
// Value object.
func (l *Loader) Var(val Value, option string) {
	l.init()

	l.values[option] = val
}

// StringVar specifies that the given option should be loaded as a string.
func (l *Loader) StringVar(dest *string, option string) {
	l.init()

	l.Var((*stringValue)(dest), option)
}

// Load loads tmux options using the underlying tmux.Driver with the
// provided request. This will fill all previously specified values and
// vars.
func (l *Loader) Load(req tmux.ShowOptionsRequest) (err error) {
	if len(l.values) == 0 {
		return nil
	}

	out, err := l.Tmux.ShowOptions(req)
	if err != nil {
		return err
	}

	scan := bufio.NewScanner(bytes.NewReader(out))
	for scan.Scan() {
		name, value, ok := bytes.Cut(scan.Bytes(), []byte{' '})
		if !ok {
			continue
		}

		recv, ok := l.values[string(name)]
		if !ok {
			continue
		}

		if serr := recv.Set(maybeUnquote(string(value))); serr != nil {
			err = multierr.Append(err, fmt.Errorf("load option %q: %v", name, serr))
		}
	}

	return multierr.Append(err, scan.Err())
}

// maybeUnquote strips one level of quoting from the value, leaving it
// unchanged if it isn't quoted or the quoting is malformed.
func maybeUnquote(value string) string {
	if len(value) == 0 {
		return value
	}
	switch value[0] {
	case '"', '\'':
		if o, err := strconv.Unquote(value); err == nil {
			return o
		}
	}
	return value
}

type stringValue string

func (v *stringValue) Set(s string) error {
	*(*string)(v) = s
	return nil
}
