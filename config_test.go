package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scribe-sh/tmux-scribe/internal/iotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want config
	}{
		{desc: "no args"}, // zero values
		{
			desc: "session",
			give: []string{"-session", "foo:bar"},
			want: config{Session: "foo:bar"},
		},
		{
			desc: "terminal",
			give: []string{"-terminal", "alacritty -e"},
			want: config{Terminal: "alacritty -e"},
		},
		{
			desc: "socket",
			give: []string{"-socket", "/tmp/scribe.sock"},
			want: config{Socket: "/tmp/scribe.sock"},
		},
		{
			desc: "tmux",
			give: []string{"-tmux", "/opt/bin/tmux"},
			want: config{Tmux: "/opt/bin/tmux"},
		},
		{
			desc: "timeout",
			give: []string{"-timeout", "10s"},
			want: config{Timeout: 10 * time.Second},
		},
		{
			desc: "interval",
			give: []string{"-interval", "10ms"},
			want: config{Interval: 10 * time.Millisecond},
		},
		{
			desc: "log",
			give: []string{"-log", "log.txt"},
			want: config{LogFile: "log.txt"},
		},
		{
			desc: "verbose",
			give: []string{"-verbose"},
			want: config{Verbose: true},
		},
		{
			desc: "selftest",
			give: []string{"-selftest"},
			want: config{SelfTest: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
			fset.SetOutput(iotest.Writer(t))
			cfg := newConfig(fset)

			require.NoError(t, fset.Parse(tt.give))
			assert.Equal(t, &tt.want, cfg)
		})
	}
}

func TestConfigFillFrom(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		var cfg config
		cfg.FillFrom(&_defaultConfig)
		assert.Equal(t, _defaultTerminal, cfg.Terminal)
		assert.Equal(t, _defaultTmux, cfg.Tmux)
		assert.Equal(t, _defaultPrefix, cfg.Prefix)
		assert.Equal(t, _defaultWindow, cfg.Window)
		assert.Equal(t, _defaultTimeout, cfg.Timeout)
		assert.Equal(t, _defaultInterval, cfg.Interval)
	})

	t.Run("set values win", func(t *testing.T) {
		t.Parallel()

		cfg := config{
			Terminal: "xterm",
			Prefix:   "doc-",
			Timeout:  time.Second,
		}
		cfg.FillFrom(&_defaultConfig)
		assert.Equal(t, "xterm", cfg.Terminal)
		assert.Equal(t, "doc-", cfg.Prefix)
		assert.Equal(t, time.Second, cfg.Timeout)
		assert.Equal(t, _defaultWindow, cfg.Window)
	})
}

func TestConfigBuildLogWriter(t *testing.T) {
	t.Parallel()

	t.Run("stderr", func(t *testing.T) {
		t.Parallel()

		var (
			cfg  config
			buff bytes.Buffer
		)
		w, closew, err := cfg.BuildLogWriter(&buff)
		require.NoError(t, err)
		defer closew()

		_, err = io.WriteString(w, "foo")
		require.NoError(t, err)
		assert.Equal(t, "foo", buff.String())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		logFile := filepath.Join(t.TempDir(), "log.out")
		cfg := config{LogFile: logFile}

		var buff bytes.Buffer
		defer func() { assert.Empty(t, buff.String()) }()

		w, closew, err := cfg.BuildLogWriter(&buff)
		require.NoError(t, err)

		_, err = io.WriteString(w, "foo")
		require.NoError(t, err)
		closew()

		got, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Equal(t, "foo", string(got))
	})

	t.Run("file open error", func(t *testing.T) {
		t.Parallel()

		logFile := filepath.Join(t.TempDir(), "does/not/exist/log.out")
		cfg := config{LogFile: logFile}

		_, _, err := cfg.BuildLogWriter(io.Discard)
		require.Error(t, err)

		_, err = os.Stat(logFile)
		assert.Error(t, err)
	})
}

func TestUsageHasAllConfigFlags(t *testing.T) {
	// We use _usage to write the user facing help. Make sure that every
	// flag registered by newConfig has a corresponding entry in _usage.

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	newConfig(fset)

	fset.VisitAll(func(f *flag.Flag) {
		assert.Contains(t, _usage, "\t-"+f.Name,
			"flag %q should be documented", f.Name)
	})
}
