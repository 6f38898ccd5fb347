// Package tmux provides APIs to interact with the tmux(1) terminal multiplexer.
//
// It provides a [Driver] interface and a [ShellDriver] implementation.
// These provide direct, low-level interaction with the tmux operations
// tmux-scribe needs: creating sessions and windows, interrogating them,
// setting options, and injecting keystrokes.
package tmux
