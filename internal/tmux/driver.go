package tmux

//go:generate mockgen -destination tmuxtest/mock_driver.go -package tmuxtest github.com/scribe-sh/tmux-scribe/internal/tmux Driver

// Driver is a low-level API to access tmux. This maps directly to tmux
// commands.
//
// Interrogation commands (ListSessions, ListPanes, ShowOptions) run
// synchronously and return the command's standard output. State-mutating
// commands (NewSession, NewWindow, SetOption, SendKeys) are fire-and-forget:
// the process is spawned and the call returns without waiting for it to
// finish. Callers must not assume a mutating command has completed when the
// call returns; only the spawn itself is guaranteed.
type Driver interface {
	// ListSessions runs the tmux list-sessions command and returns its
	// output.
	ListSessions(ListSessionsRequest) ([]byte, error)

	// ListPanes runs the tmux list-panes command and returns its output.
	ListPanes(ListPanesRequest) ([]byte, error)

	// ShowOptions runs the tmux show-options command and returns its
	// output.
	ShowOptions(ShowOptionsRequest) ([]byte, error)

	// NewSession spawns a tmux new-session command.
	NewSession(NewSessionRequest) error

	// NewWindow spawns a tmux new-window command.
	NewWindow(NewWindowRequest) error

	// SetOption spawns a tmux set-option command.
	SetOption(SetOptionRequest) error

	// SendKeys spawns a tmux send-keys command.
	SendKeys(SendKeysRequest) error
}

// ListSessionsRequest specifies the parameters for a list-sessions command.
type ListSessionsRequest struct {
	// Output format for each session, as a tmux format string.
	Format string
}

// ListPanesRequest specifies the parameters for a list-panes command.
type ListPanesRequest struct {
	// Target whose panes should be listed. Defaults to the current
	// window.
	Target string

	// Output format for each pane, as a tmux format string.
	Format string
}

// ShowOptionsRequest specifies the parameters for a show-options command.
type ShowOptionsRequest struct {
	Global bool // show global options
}

// NewSessionRequest specifies the parameters for a new-session command.
type NewSessionRequest struct {
	// Name of the session.
	Name string

	// Name of the session's initial window, if any.
	Window string

	// Working directory for the session, if any.
	Dir string

	// Whether the new session should be detached from this client.
	Detached bool
}

// NewWindowRequest specifies the parameters for a new-window command.
type NewWindowRequest struct {
	// Session the window is created in.
	Session string

	// Name of the new window, if any.
	Name string

	// Working directory for the window, if any.
	Dir string
}

// SetOptionRequest specifies the parameters for a set-option command.
type SetOptionRequest struct {
	// Target the option applies to, if any.
	Target string

	// Name of the option to set.
	Name string

	// Value to set the option to.
	Value string
}

// SendKeysRequest specifies the parameters for a send-keys command.
type SendKeysRequest struct {
	// Target pane or window receiving the keystrokes.
	Target string

	// Text to send. With Literal set, the text is typed as-is; otherwise
	// tmux interprets key names like "Enter".
	Text string

	// Whether to disable key name lookup.
	Literal bool
}
