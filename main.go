package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/scribe-sh/tmux-scribe/internal/log"
	"github.com/scribe-sh/tmux-scribe/internal/paniclog"
	"github.com/scribe-sh/tmux-scribe/internal/tmux"
	"github.com/scribe-sh/tmux-scribe/internal/tmux/tmuxopt"
)

const _name = "tmux-scribe"

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
	if err := cmd.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
}

const _usage = `usage: %v [options] [file]

Types a code block into a persistent tmux session, creating the session and
window on demand. The block is read from the given file, or from stdin if no
file is given. Output stays in the tmux window; nothing is captured.

The following flags are available:

	-session NAME[:WINDOW]
		target session and window.
		The session name gets the configured namespace prefix.
		Defaults to %q; an absent window means the first window.
	-terminal COMMAND
		terminal emulator opened on the session the first time it is
		created, e.g. "xterm" or "alacritty -e".
		Defaults to %q.
	-socket PATH
		alternate tmux server socket, forwarded to every tmux call.
	-tmux PATH
		tmux executable to use. Defaults to %q.
	-timeout DURATION
		how long to wait for the window to come up before giving up.
		Defaults to %v.
	-interval DURATION
		delay between window checks while waiting.
		Defaults to %v.
	-selftest
		verify the injection path end to end using a real tmux,
		then exit.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
`

func (cmd *mainCmd) Run(args []string) (err error) {
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), _usage,
			flag.Name(), _defaultSessionName, _defaultTerminal,
			_defaultTmux, _defaultTimeout, _defaultInterval)
	}

	cfg := newConfig(flag)

	if err := flag.Parse(args); err != nil {
		return err
	}

	var body string
	switch args := flag.Args(); len(args) {
	case 0:
		if !cfg.SelfTest {
			bs, err := io.ReadAll(cmd.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			body = string(bs)
		}
	case 1:
		bs, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read code block: %w", err)
		}
		body = string(bs)
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}

	logW, closeLog, err := cfg.BuildLogWriter(cmd.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	defer paniclog.Recover(&err, logW)

	logger := log.New(logW)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	tmuxDriver := &tmux.ShellDriver{Path: cfg.Tmux, Socket: cfg.Socket}
	tmuxDriver.SetLogger(logger.WithName("tmux"))

	// Settings not given on the command line may come from tmux options;
	// anything still unset falls back to the defaults. A failing load is
	// expected when no server is running yet.
	tmuxLoader := tmuxopt.Loader{Tmux: tmuxDriver}
	var optCfg config
	optCfg.RegisterOptions(&tmuxLoader)
	if err := tmuxLoader.Load(tmux.ShowOptionsRequest{Global: true}); err != nil {
		logger.Debugf("load tmux options: %v", err)
	} else {
		cfg.FillFrom(&optCfg)
	}
	cfg.FillFrom(&_defaultConfig)

	app := &app{
		Log:  logger,
		Tmux: tmuxDriver,
		Terminal: &terminalLauncher{
			Command: cfg.Terminal,
			Tmux:    cfg.Tmux,
			Socket:  cfg.Socket,
			Log:     logger.WithName("terminal"),
		},
		Clock:  clock.New(),
		Getenv: cmd.Getenv,
	}

	if cfg.SelfTest {
		return app.SelfTest(cfg)
	}
	return app.Run(cfg, body)
}
