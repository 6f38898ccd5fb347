package tmux

import "strings"

// Window addressing markers understood by tmux targets. A window may be
// addressed by exact name or by position; a freshly created or ambient
// window does not have a predictable name, so targets without a window name
// address the first window positionally.
const (
	_windowByName = "=" // exact window-name lookup
	_firstWindow  = "^" // first window in the session
)

// Target identifies a session/window pair inside tmux. It is built once per
// code-block execution from the user's specifier and is immutable after
// construction; continuity across executions comes from tmux's own state.
type Target struct {
	// Session is the full session name, namespace prefix included.
	Session string

	// Window is the window name, if any. An empty Window addresses the
	// session's first window.
	Window string
}

// ParseTarget builds a Target from a "session[:window]" specifier. The
// specifier is split on the first ":". An empty session segment falls back
// to defaultSession; the namespace prefix is applied to either. An empty
// window segment means "first window", not a window named "".
//
// The segments are not validated; tmux applies its own argument rules.
func ParseTarget(spec, prefix, defaultSession string) Target {
	session, window, _ := strings.Cut(spec, ":")
	if session == "" {
		session = defaultSession
	}
	return Target{
		Session: prefix + session,
		Window:  window,
	}
}

// String returns the tmux addressing string for the target.
func (t Target) String() string {
	if t.Window == "" {
		return t.Session + ":" + _firstWindow
	}
	return t.Session + ":" + _windowByName + t.Window
}
