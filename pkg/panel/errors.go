package panel

import "errors"

var (
	// ErrUnknownEvent is returned by Dispatch for an event name without a
	// registered handler.
	ErrUnknownEvent = errors.New("panel: unknown event")
	// ErrLoopClosed is returned by Step once the loop has been closed.
	ErrLoopClosed = errors.New("panel: loop closed")
)
