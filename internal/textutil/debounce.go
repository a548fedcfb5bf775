package textutil

import (
	"context"
	"sync"
	"time"
)

// Debouncer delays calls to fn until wait has passed without a newer call.
// It holds at most one pending call; a new Call replaces it.
type Debouncer[T any] struct {
	fn   func(T)
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer wraps fn.
func NewDebouncer[T any](fn func(T), wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait}
}

// Debounce returns a function that forwards only the last of a burst of
// calls to fn, wait after that last call.
func Debounce[T any](fn func(T), wait time.Duration) func(T) {
	return NewDebouncer(fn, wait).Call
}

// Call schedules fn(arg), cancelling any call still pending.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// A newer call may have raced with this timer firing.
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn(arg)
	})
}

// Stop drops the pending call, if any, and ignores later calls.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Delay waits for d or until ctx is done, whichever comes first.
func Delay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
