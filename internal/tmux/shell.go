package tmux

import (
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/scribe-sh/tmux-scribe/internal/log"
)

const _defaultTmux = "tmux"

// minimal hook to change how exec.Cmd are run. Tests will provide a
// different implementation.
type runner struct {
	Start  func(*exec.Cmd) error
	Wait   func(*exec.Cmd) error
	Output func(*exec.Cmd) ([]byte, error)
}

var defaultRunner = runner{
	Start:  (*exec.Cmd).Start,
	Wait:   (*exec.Cmd).Wait,
	Output: (*exec.Cmd).Output,
}

// ShellDriver is a Driver implementation that shells out to tmux to run
// commands.
type ShellDriver struct {
	// Path to the tmux executable. Defaults to "tmux".
	Path string

	// Path to the tmux server socket. If set, every command is run with
	// "-S" and this path prepended to its arguments.
	Socket string

	log  *log.Logger
	run  *runner
	once sync.Once
}

var _ Driver = (*ShellDriver)(nil)

func (s *ShellDriver) init() {
	s.once.Do(func() {
		if s.log == nil {
			s.log = log.Discard
		}

		if s.Path == "" {
			s.Path = _defaultTmux
		}

		if s.run == nil {
			s.run = &defaultRunner
		}
	})
}

// SetLogger specifies the logger for the ShellDriver. By default, the
// ShellDriver does not log anything.
func (s *ShellDriver) SetLogger(log *log.Logger) {
	s.log = log
}

func (s *ShellDriver) cmd(args ...string) *exec.Cmd {
	if len(s.Socket) > 0 {
		args = append([]string{"-S", s.Socket}, args...)
	}
	return exec.Command(s.Path, args...)
}

// errorWriter sets the provided io.Writers to the same log.Writer and
// returns a function to close them.
//
//	cmd := s.cmd("some", "cmd")
//	defer s.errorWriter(&cmd.Stderr)()
func (s *ShellDriver) errorWriter(ws ...*io.Writer) (close func()) {
	writer := &log.Writer{Log: s.log, Level: log.Error}
	for _, w := range ws {
		*w = writer
	}
	return func() { writer.Close() }
}

// spawn starts the command and returns without waiting for it to finish. A
// background goroutine reaps the process and reports a non-zero exit to the
// log; only a failure to start is reported to the caller.
func (s *ShellDriver) spawn(cmd *exec.Cmd) error {
	closew := s.errorWriter(&cmd.Stdout, &cmd.Stderr)
	if err := s.run.Start(cmd); err != nil {
		closew()
		return fmt.Errorf("start %q: %w", cmd.Args, err)
	}

	wait := s.run.Wait
	go func() {
		defer closew()
		if err := wait(cmd); err != nil {
			s.log.Errorf("%q: %v", cmd.Args, err)
		}
	}()
	return nil
}

// ListSessions runs the list-sessions command and returns its output.
func (s *ShellDriver) ListSessions(req ListSessionsRequest) ([]byte, error) {
	s.init()

	args := []string{"list-sessions"}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-F", f)
	}
	cmd := s.cmd(args...)
	defer s.errorWriter(&cmd.Stderr)()

	s.log.Debugf("list sessions: %+v", req)
	return s.run.Output(cmd)
}

// ListPanes runs the list-panes command and returns its output.
func (s *ShellDriver) ListPanes(req ListPanesRequest) ([]byte, error) {
	s.init()

	args := []string{"list-panes"}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-F", f)
	}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	cmd := s.cmd(args...)
	defer s.errorWriter(&cmd.Stderr)()

	s.log.Debugf("list panes: %+v", req)
	return s.run.Output(cmd)
}

// ShowOptions runs the show-options command and returns its output.
func (s *ShellDriver) ShowOptions(req ShowOptionsRequest) ([]byte, error) {
	s.init()

	args := []string{"show-options"}
	if req.Global {
		args = append(args, "-g")
	}
	cmd := s.cmd(args...)
	defer s.errorWriter(&cmd.Stderr)()

	s.log.Debugf("show options: %+v", req)
	return s.run.Output(cmd)
}

// NewSession spawns the new-session command and returns without waiting for
// it to finish.
func (s *ShellDriver) NewSession(req NewSessionRequest) error {
	s.init()

	args := []string{"new-session"}
	if req.Detached {
		args = append(args, "-d")
	}
	if d := req.Dir; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if n := req.Name; len(n) > 0 {
		args = append(args, "-s", n)
	}
	if w := req.Window; len(w) > 0 {
		args = append(args, "-n", w)
	}

	s.log.Debugf("new session: %+v", req)
	return s.spawn(s.cmd(args...))
}

// NewWindow spawns the new-window command and returns without waiting for it
// to finish.
func (s *ShellDriver) NewWindow(req NewWindowRequest) error {
	s.init()

	args := []string{"new-window"}
	if d := req.Dir; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if n := req.Name; len(n) > 0 {
		args = append(args, "-n", n)
	}
	if t := req.Session; len(t) > 0 {
		args = append(args, "-t", t)
	}

	s.log.Debugf("new window: %+v", req)
	return s.spawn(s.cmd(args...))
}

// SetOption spawns the set-option command and returns without waiting for it
// to finish.
func (s *ShellDriver) SetOption(req SetOptionRequest) error {
	s.init()

	args := []string{"set-option"}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	args = append(args, req.Name, req.Value)

	s.log.Debugf("set option: %+v", req)
	return s.spawn(s.cmd(args...))
}

// SendKeys spawns the send-keys command and returns without waiting for it
// to finish.
func (s *ShellDriver) SendKeys(req SendKeysRequest) error {
	s.init()

	args := []string{"send-keys"}
	if req.Literal {
		args = append(args, "-l")
	}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	args = append(args, req.Text)

	s.log.Debugf("send keys: %+v", req)
	return s.spawn(s.cmd(args...))
}
