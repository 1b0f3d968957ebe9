package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoFilter is returned when a session is started without a filter.
	ErrNoFilter = errors.New("tui: filter is required")
)
