package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/scribe-sh/tmux-scribe/internal/tmux"
	"github.com/scribe-sh/tmux-scribe/internal/tmux/tmuxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectAliveTarget arranges for the mock to report the target's session
// and window as already existing, with renaming disabled without error.
func expectAliveTarget(mockTmux *tmuxtest.MockDriver) {
	mockTmux.EXPECT().
		ListSessions(gomock.Any()).
		Return([]byte("scribe-foo\n"), nil).
		AnyTimes()
	mockTmux.EXPECT().
		ListPanes(gomock.Any()).
		Return([]byte("yes_exists\n"), nil).
		AnyTimes()
	mockTmux.EXPECT().
		SetOption(gomock.Any()).
		Return(nil).
		AnyTimes()
}

func TestSelfTest(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockTmux := tmuxtest.NewMockDriver(mockCtrl)
	expectAliveTarget(mockTmux)

	var term fakeTerminal
	app := newTestApp(t, mockTmux, &term)

	// The injected command has the form, "echo <marker> > <file>".
	// Pretend to be the shell on the other side of the window.
	mockTmux.EXPECT().
		SendKeys(tmuxtest.SendKeysRequestMatcher{Text: "Enter"}).
		Return(nil)
	mockTmux.EXPECT().
		SendKeys(gomock.Any()).
		DoAndReturn(func(req tmux.SendKeysRequest) error {
			cmd, file, ok := strings.Cut(req.Text, " > ")
			require.True(t, ok, "unexpected command %q", req.Text)
			marker := strings.TrimPrefix(cmd, "echo ")
			return os.WriteFile(file, []byte(marker+"\n"), 0o644)
		})

	err := app.SelfTest(testConfig("foo:bar"))
	require.NoError(t, err)
}

func TestSelfTestMarkerMismatch(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockTmux := tmuxtest.NewMockDriver(mockCtrl)
	expectAliveTarget(mockTmux)

	var term fakeTerminal
	app := newTestApp(t, mockTmux, &term)

	mockTmux.EXPECT().
		SendKeys(tmuxtest.SendKeysRequestMatcher{Text: "Enter"}).
		Return(nil)
	mockTmux.EXPECT().
		SendKeys(gomock.Any()).
		DoAndReturn(func(req tmux.SendKeysRequest) error {
			_, file, ok := strings.Cut(req.Text, " > ")
			require.True(t, ok, "unexpected command %q", req.Text)
			return os.WriteFile(file, []byte("bogus\n"), 0o644)
		})

	err := app.SelfTest(testConfig("foo:bar"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "bogus"`)
}

func TestSelfTestTimeout(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockTmux := tmuxtest.NewMockDriver(mockCtrl)
	expectAliveTarget(mockTmux)

	var term fakeTerminal
	app := newTestApp(t, mockTmux, &term)

	// The keystrokes vanish into the void and the probe file never
	// fills up.
	mockTmux.EXPECT().
		SendKeys(gomock.Any()).
		Return(nil).
		Times(2)

	cfg := testConfig("foo:bar")
	cfg.Timeout = 5 * time.Millisecond
	cfg.Interval = time.Millisecond

	err := app.SelfTest(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errPollTimeout)
}
