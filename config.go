package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/scribe-sh/tmux-scribe/internal/tmux/tmuxopt"
)

const (
	// _defaultSessionName names the session used when the specifier has an
	// empty session segment.
	_defaultSessionName = "default"

	_defaultTmux     = "tmux"
	_defaultPrefix   = "scribe-"
	_defaultWindow   = "scr1"
	_defaultTerminal = "gnome-terminal --"

	_defaultTimeout  = 5 * time.Second
	_defaultInterval = 50 * time.Millisecond
)

var _defaultConfig = config{
	Tmux:     _defaultTmux,
	Prefix:   _defaultPrefix,
	Window:   _defaultWindow,
	Terminal: _defaultTerminal,
	Timeout:  _defaultTimeout,
	Interval: _defaultInterval,
}

type config struct {
	Session  string        // session[:window] specifier
	Terminal string        // terminal emulator command and options
	Socket   string        // alternate tmux server socket path
	Tmux     string        // tmux executable
	Prefix   string        // namespace prefix for session names
	Window   string        // initial window name for new sessions
	Timeout  time.Duration // bound on waiting for the window to appear
	Interval time.Duration // delay between window interrogations
	LogFile  string
	Verbose  bool
	SelfTest bool
}

func newConfig(flag *flag.FlagSet) *config {
	var c config
	c.RegisterFlags(flag)
	return &c
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.Session, "session", "", "")
	flag.StringVar(&c.Terminal, "terminal", "", "")
	flag.StringVar(&c.Socket, "socket", "", "")
	flag.StringVar(&c.Tmux, "tmux", "", "")
	flag.DurationVar(&c.Timeout, "timeout", 0, "")
	flag.DurationVar(&c.Interval, "interval", 0, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
	flag.BoolVar(&c.SelfTest, "selftest", false, "")
}

// RegisterOptions specifies the tmux options this configuration may be
// loaded from.
func (c *config) RegisterOptions(load *tmuxopt.Loader) {
	load.StringVar(&c.Terminal, "@scribe-terminal")
	load.StringVar(&c.Prefix, "@scribe-session-prefix")
	load.StringVar(&c.Window, "@scribe-window")
}

// FillFrom updates this config object, filling empty values with values
// from the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.Terminal) == 0 {
		c.Terminal = o.Terminal
	}
	if len(c.Tmux) == 0 {
		c.Tmux = o.Tmux
	}
	if len(c.Prefix) == 0 {
		c.Prefix = o.Prefix
	}
	if len(c.Window) == 0 {
		c.Window = o.Window
	}
	if c.Timeout == 0 {
		c.Timeout = o.Timeout
	}
	if c.Interval == 0 {
		c.Interval = o.Interval
	}
	c.Verbose = c.Verbose || o.Verbose
}

// BuildLogWriter builds the io.Writer to which logs should be written,
// using the given writer as the default destination. Returns a function to
// close the writer when done.
func (c *config) BuildLogWriter(stderr io.Writer) (w io.Writer, close func(), err error) {
	if len(c.LogFile) == 0 {
		return stderr, func() {}, nil
	}

	f, err := os.Create(c.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
