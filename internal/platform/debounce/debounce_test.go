package debounce_test

import (
	"sync"
	"testing"
	"time"

	"vitalog/internal/platform/debounce"
)

type recorder struct {
	mu     sync.Mutex
	values []int
}

func (r *recorder) record(v int) func() {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.values = append(r.values, v)
	}
}

func (r *recorder) got() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}

func TestBurstRunsOnlyLastAction(t *testing.T) {
	t.Parallel()
	trig := debounce.New(40 * time.Millisecond)
	rec := &recorder{}

	for _, v := range []int{100, 101, 102, 103} {
		trig.Schedule(rec.record(v))
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)
	got := rec.got()
	if len(got) != 1 || got[0] != 103 {
		t.Fatalf("expected single run with last value 103, got %v", got)
	}
	if trig.Pending() {
		t.Fatalf("slot must be empty after firing")
	}
}

func TestFlushRunsPendingImmediately(t *testing.T) {
	t.Parallel()
	trig := debounce.New(time.Hour)
	rec := &recorder{}

	trig.Schedule(rec.record(7))
	trig.Flush()

	if got := rec.got(); len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected flushed value 7, got %v", got)
	}

	// A second flush must be a no-op.
	trig.Flush()
	if got := rec.got(); len(got) != 1 {
		t.Fatalf("flush reran a consumed action: %v", got)
	}
}

func TestCancelDiscardsPending(t *testing.T) {
	t.Parallel()
	trig := debounce.New(30 * time.Millisecond)
	rec := &recorder{}

	trig.Schedule(rec.record(1))
	trig.Cancel()

	time.Sleep(90 * time.Millisecond)
	if got := rec.got(); len(got) != 0 {
		t.Fatalf("cancelled action still ran: %v", got)
	}
}
