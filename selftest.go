package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
)

// _selfTestMarker is the value the injected command writes into the probe
// file. There is no in-band completion signal for injected keystrokes, so
// the self test uses the filesystem as an out-of-band one.
const _selfTestMarker = "tmux-scribe"

// SelfTest exercises the whole injection path against a real tmux: it
// injects a command that writes a marker into a temporary file, waits for
// the file to become non-empty, and verifies the contents.
func (a *app) SelfTest(cfg *config) (err error) {
	probe, err := os.CreateTemp("", "tmux-scribe-test-")
	if err != nil {
		return fmt.Errorf("create probe file: %w", err)
	}
	name := probe.Name()
	multierr.AppendInto(&err, probe.Close())
	defer func() {
		multierr.AppendInto(&err, os.Remove(name))
	}()

	body := fmt.Sprintf("echo %v > %v", _selfTestMarker, name)
	if err := a.Run(cfg, body); err != nil {
		return err
	}

	var got string
	perr := a.poll(cfg.Timeout, cfg.Interval, func() (bool, error) {
		bs, err := os.ReadFile(name)
		if err != nil {
			return false, err
		}
		got = strings.TrimSpace(string(bs))
		return len(bs) > 0, nil
	})
	if perr != nil {
		return fmt.Errorf("wait for probe file: %w", perr)
	}

	if got != _selfTestMarker {
		return fmt.Errorf("probe file: got %q, want %q", got, _selfTestMarker)
	}

	a.Log.Infof("self test passed")
	return nil
}
