package tmux

import (
	"bufio"
	"bytes"
	"errors"
	"os/exec"
)

// Status reports whether a session or window exists inside tmux.
type Status int

const (
	// StatusAbsent indicates that the session or window does not exist.
	StatusAbsent Status = iota

	// StatusAlive indicates that the session or window exists.
	StatusAlive
)

// Alive reports whether the status is StatusAlive.
func (s Status) Alive() bool { return s == StatusAlive }

func (s Status) String() string {
	if s.Alive() {
		return "alive"
	}
	return "absent"
}

// _sessionNameFormat lists one session name per line.
const _sessionNameFormat = "#{session_name}"

// _aliveSentinel is emitted once per pane by the window interrogation. Only
// this exact string on its own line indicates an existing window; anything
// else, including an error from tmux, resolves to absent.
const _aliveSentinel = "yes_exists"

// SessionStatus interrogates tmux for the target's session. A session is
// alive only if list-sessions reports its exact name.
//
// A failing list-sessions command (e.g. no server running yet) resolves to
// StatusAbsent. Other errors, such as the tmux binary missing, are returned.
func SessionStatus(driver Driver, t Target) (Status, error) {
	out, err := driver.ListSessions(ListSessionsRequest{Format: _sessionNameFormat})
	if err != nil {
		return StatusAbsent, ignoreExitError(err)
	}
	if containsLine(out, t.Session) {
		return StatusAlive, nil
	}
	return StatusAbsent, nil
}

// WindowStatus interrogates tmux for the target's window. A target without
// a window name is alive unconditionally; there is no window to check.
// Otherwise the window is alive only if list-panes scoped to the target
// emits the sentinel verbatim.
//
// A failing list-panes command (e.g. the session does not exist) resolves to
// StatusAbsent. Other errors, such as the tmux binary missing, are returned.
func WindowStatus(driver Driver, t Target) (Status, error) {
	if t.Window == "" {
		return StatusAlive, nil
	}

	out, err := driver.ListPanes(ListPanesRequest{
		Target: t.String(),
		Format: _aliveSentinel,
	})
	if err != nil {
		return StatusAbsent, ignoreExitError(err)
	}
	if containsLine(out, _aliveSentinel) {
		return StatusAlive, nil
	}
	return StatusAbsent, nil
}

// ignoreExitError drops errors that represent a command that ran and exited
// non-zero. tmux interrogations fail that way when the server or session is
// simply not there, which is an answer, not an error.
func ignoreExitError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

func containsLine(out []byte, want string) bool {
	scan := bufio.NewScanner(bytes.NewReader(out))
	for scan.Scan() {
		if scan.Text() == want {
			return true
		}
	}
	return false
}
