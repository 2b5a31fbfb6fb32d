package debounce

import (
	"sync"
	"time"
)

// DefaultQuiet is the quiet interval after which a burst of scheduled
// actions is considered settled.
const DefaultQuiet = 500 * time.Millisecond

// Trigger is a single-slot deferred action. Scheduling replaces any
// pending action, so only the most recent one in a burst survives to
// run once the quiet interval elapses with no further scheduling.
type Trigger struct {
	quiet time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

func New(quiet time.Duration) *Trigger {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Trigger{quiet: quiet}
}

// Schedule cancels any pending action and arms fn to run after the
// quiet interval.
func (t *Trigger) Schedule(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.pending = fn
	t.timer = time.AfterFunc(t.quiet, t.fire)
}

// Flush runs the pending action immediately, if there is one.
func (t *Trigger) Flush() {
	t.mu.Lock()
	fn := t.take()
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Cancel discards the pending action without running it.
func (t *Trigger) Cancel() {
	t.mu.Lock()
	t.take()
	t.mu.Unlock()
}

// Pending reports whether an action is armed.
func (t *Trigger) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

func (t *Trigger) fire() {
	t.mu.Lock()
	fn := t.take()
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// take clears the slot and returns the pending action. Caller holds mu.
func (t *Trigger) take() func() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	fn := t.pending
	t.pending = nil
	return fn
}
