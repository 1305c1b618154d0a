package engine

import (
	"sync/atomic"
	"time"
)

// searchSafetyMargin is subtracted from the caller's time budget so the
// deadline check has room to notice expiry and unwind before the real
// wall-clock limit is hit (spec section 4.6.1: safety ~20-50ms).
const searchSafetyMargin = 30 * time.Millisecond

// SearchContext carries per-search deadline and node-count state.
// stopped is a sticky flag set once the deadline passes; nothing in the
// search ever un-sets it or relies on an exception to unwind, matching
// the deadline-check-not-throw redesign in section 9.
type SearchContext struct {
	deadline time.Time
	nodes    int64
	stopped  atomic.Bool
}

// NewSearchContext starts a deadline budget milliseconds from now, minus
// the safety margin.
func NewSearchContext(budget time.Duration) *SearchContext {
	d := budget - searchSafetyMargin
	if d < 0 {
		d = 0
	}
	return &SearchContext{deadline: time.Now().Add(d)}
}

// Expired reports whether the deadline has passed, latching stopped to
// true the first time it observes expiry.
func (ctx *SearchContext) Expired() bool {
	if ctx.stopped.Load() {
		return true
	}
	if time.Now().After(ctx.deadline) {
		ctx.stopped.Store(true)
		return true
	}
	return false
}

// Stop forces the context into the expired state immediately.
func (ctx *SearchContext) Stop() { ctx.stopped.Store(true) }

// Nodes returns the running node count.
func (ctx *SearchContext) Nodes() int64 { return ctx.nodes }
