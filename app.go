package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/scribe-sh/tmux-scribe/internal/log"
	"github.com/scribe-sh/tmux-scribe/internal/tmux"
)

// errPollTimeout is reported when a bounded wait elapses without the
// condition coming true.
var errPollTimeout = errors.New("timed out")

// terminal spawns a visible terminal emulator attached to a tmux target.
type terminal interface {
	Launch(tmux.Target) error
}

// app is the session manager. For one code block, it resolves the target,
// brings the session and window into existence if needed, optionally opens
// a visible terminal, and types the block into the window line by line. It
// never captures command output; the session is where the user watches
// their code run.
type app struct {
	Log      *log.Logger
	Tmux     tmux.Driver
	Terminal terminal
	Clock    clock.Clock
	Getenv   func(string) string // == os.Getenv
}

// Run injects the given code block into the window named by cfg.Session.
func (a *app) Run(cfg *config, body string) error {
	target := tmux.ParseTarget(cfg.Session, cfg.Prefix, _defaultSessionName)
	a.Log.Debugf("target: %v", target)

	// Aliveness is evaluated before any mutation so that the terminal
	// launch below keys off the pre-creation state.
	sessionWas, err := tmux.SessionStatus(a.Tmux, target)
	if err != nil {
		return fmt.Errorf("interrogate session %q: %w", target.Session, err)
	}
	windowWas, err := tmux.WindowStatus(a.Tmux, target)
	if err != nil {
		return fmt.Errorf("interrogate window %q: %w", target, err)
	}
	a.Log.Debugf("session %v, window %v", sessionWas, windowWas)

	if !sessionWas.Alive() {
		if err := a.createSession(target, cfg); err != nil {
			return fmt.Errorf("create session %q: %w", target.Session, err)
		}
	}
	if !windowWas.Alive() {
		if err := a.createWindow(target, cfg); err != nil {
			return fmt.Errorf("create window %q: %w", target, err)
		}
	}

	// A visible terminal is tied to new sessions only. If the session
	// already existed, a previous run attached a terminal to it.
	if !sessionWas.Alive() {
		if err := a.Terminal.Launch(target); err != nil {
			return fmt.Errorf("launch terminal: %w", err)
		}
	}

	if err := a.waitForWindow(target, cfg); err != nil {
		return err
	}

	a.disableRenaming(target)

	for _, line := range splitLines(body) {
		if err := a.sendLine(target, line); err != nil {
			return fmt.Errorf("send line to %q: %w", target, err)
		}
	}
	return nil
}

// createSession creates the target's session. The session's initial window
// carries the target's window name, or the configured default if the target
// has none. Re-checking aliveness first makes creation idempotent.
func (a *app) createSession(target tmux.Target, cfg *config) error {
	status, err := tmux.SessionStatus(a.Tmux, target)
	if err != nil {
		return err
	}
	if status.Alive() {
		return nil
	}

	window := target.Window
	if window == "" {
		window = cfg.Window
	}
	return a.Tmux.NewSession(tmux.NewSessionRequest{
		Name:     target.Session,
		Window:   window,
		Dir:      a.Getenv("HOME"),
		Detached: true,
	})
}

// createWindow creates the target's window inside its session, guarded by
// the same idempotent re-check as createSession.
func (a *app) createWindow(target tmux.Target, cfg *config) error {
	status, err := tmux.WindowStatus(a.Tmux, target)
	if err != nil {
		return err
	}
	if status.Alive() {
		return nil
	}

	return a.Tmux.NewWindow(tmux.NewWindowRequest{
		Session: target.Session,
		Name:    target.Window,
		Dir:     a.Getenv("HOME"),
	})
}

// waitForWindow blocks until the target's window reports alive. Window
// creation is asynchronous from our point of view, so this gates keystroke
// injection: typing into a window that isn't there yet loses the text.
func (a *app) waitForWindow(target tmux.Target, cfg *config) error {
	err := a.poll(cfg.Timeout, cfg.Interval, func() (bool, error) {
		status, err := tmux.WindowStatus(a.Tmux, target)
		return status.Alive(), err
	})
	if err != nil {
		return fmt.Errorf("wait for window %q: %w", target, err)
	}
	return nil
}

// poll invokes ready every interval until it reports true, giving up with
// errPollTimeout once the timeout elapses.
func (a *app) poll(timeout, interval time.Duration, ready func() (bool, error)) error {
	deadline := a.Clock.Now().Add(timeout)
	for {
		ok, err := ready()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !a.Clock.Now().Before(deadline) {
			return errPollTimeout
		}
		a.Clock.Sleep(interval)
	}
}

// disableRenaming turns off the window-renaming behaviors so the window can
// be located by name on the next run. Best-effort: a failure here costs
// only relocation, not injection.
func (a *app) disableRenaming(target tmux.Target) {
	for _, opt := range []string{"allow-rename", "automatic-rename"} {
		err := a.Tmux.SetOption(tmux.SetOptionRequest{
			Target: target.String(),
			Name:   opt,
			Value:  "off",
		})
		if err != nil {
			a.Log.Errorf("disable %v on %q: %v", opt, target, err)
		}
	}
}

// sendLine types one line into the target as literal keystrokes, followed
// by an explicit newline keystroke. Lines go in one at a time because
// send-keys treats embedded newlines in literal text unreliably.
func (a *app) sendLine(target tmux.Target, line string) error {
	if err := a.Tmux.SendKeys(tmux.SendKeysRequest{
		Target:  target.String(),
		Text:    line,
		Literal: true,
	}); err != nil {
		return err
	}
	return a.Tmux.SendKeys(tmux.SendKeysRequest{
		Target: target.String(),
		Text:   "Enter",
	})
}
