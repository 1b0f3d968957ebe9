package panel

import (
	"context"
	"errors"
	"sync"
)

// Loop runs posted functions one at a time on the goroutine that calls Run or
// Step. Panels mutate their state only from inside the loop; fetch goroutines
// hand their completions back through Post.
type Loop struct {
	queue     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop creates a loop whose queue holds up to buffer pending functions
// before Post blocks.
func NewLoop(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	return &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Post queues fn. Functions posted after Close are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Step runs the next posted function, waiting for one if necessary.
func (l *Loop) Step(ctx context.Context) error {
	select {
	case fn := <-l.queue:
		fn()
		return nil
	case <-l.done:
		return ErrLoopClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes posted functions until ctx is cancelled or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.Step(ctx); err != nil {
			if errors.Is(err, ErrLoopClosed) {
				return nil
			}
			return err
		}
	}
}

// Close stops the loop. Pending and future posts are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}
