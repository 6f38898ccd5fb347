package main

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/scribe-sh/tmux-scribe/internal/log"
	"github.com/scribe-sh/tmux-scribe/internal/tmux"
)

// terminalLauncher opens a visible terminal emulator attached to a tmux
// target. The launch is fire-and-forget: the terminal outlives us and we
// never join it.
type terminalLauncher struct {
	// Command is the terminal emulator invocation, e.g. "gnome-terminal --"
	// or "alacritty -e". The first word is the program; the rest precede
	// the attach command.
	Command string

	// Tmux is the tmux executable the terminal should run.
	Tmux string

	// Socket is the tmux server socket path, if any.
	Socket string

	Log *log.Logger

	start func(*exec.Cmd) error // == (*exec.Cmd).Start
	wait  func(*exec.Cmd) error // == (*exec.Cmd).Wait
}

var _ terminal = (*terminalLauncher)(nil)

// Launch spawns the terminal emulator running "tmux attach-session" on the
// given target. xterm gets a dedicated invocation shape with the target as
// the window title; every other emulator is treated as a generic "run this
// command" launcher.
func (l *terminalLauncher) Launch(target tmux.Target) error {
	words, err := shellwords.Parse(l.Command)
	if err != nil {
		return fmt.Errorf("parse terminal command %q: %w", l.Command, err)
	}
	if len(words) == 0 {
		return errors.New("empty terminal command")
	}
	term, opts := words[0], words[1:]

	attach := []string{l.Tmux}
	if len(l.Socket) > 0 {
		attach = append(attach, "-S", l.Socket)
	}
	attach = append(attach, "attach-session", "-t", target.String())

	var args []string
	if filepath.Base(term) == "xterm" {
		args = append([]string{"-T", target.String(), "-e"}, attach...)
	} else {
		args = append(opts, attach...)
	}

	cmd := exec.Command(term, args...)
	logw := &log.Writer{Log: l.Log, Level: log.Error}
	cmd.Stdout = logw
	cmd.Stderr = logw

	start, wait := l.start, l.wait
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if wait == nil {
		wait = (*exec.Cmd).Wait
	}

	l.Log.Debugf("launch terminal: %v %q", term, args)
	if err := start(cmd); err != nil {
		logw.Close()
		return fmt.Errorf("start %v: %w", term, err)
	}

	go func() {
		defer logw.Close()
		if err := wait(cmd); err != nil {
			l.Log.Errorf("%v: %v", term, err)
		}
	}()
	return nil
}
