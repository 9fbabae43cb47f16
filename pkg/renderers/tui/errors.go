package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoOptions is reported when a selection row has nothing to choose.
	ErrNoOptions = errors.New("tui: no options available")
)
