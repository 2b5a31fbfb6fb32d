package id

import (
	"strconv"
	"sync/atomic"
	"time"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// TimeOrdered yields unique, monotonically increasing identifiers from
// the current clock reading. Two calls in the same nanosecond still
// produce distinct ids.
type TimeOrdered struct {
	last atomic.Int64
}

func (g *TimeOrdered) New() string {
	now := time.Now().UnixNano()
	for {
		prev := g.last.Load()
		if now <= prev {
			now = prev + 1
		}
		if g.last.CompareAndSwap(prev, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
