package engine

import "sync/atomic"

// Clock tracks the timestamp of the event being dispatched.
//
// Only the dispatch loop advances it. Reads are atomic so a module may hand
// the clock to helpers without worrying about where it is read from.
type Clock struct {
	start int64
	now   atomic.Int64
}

// NewClock creates a clock positioned at the fight start.
func NewClock(start int64) *Clock {
	c := &Clock{start: start}
	c.now.Store(start)
	return c
}

// Advance moves the clock to ts. The clock never moves backwards; an
// earlier ts is ignored.
func (c *Clock) Advance(ts int64) {
	for {
		cur := c.now.Load()
		if ts <= cur || c.now.CompareAndSwap(cur, ts) {
			return
		}
	}
}

// Now returns the current timestamp in ms.
func (c *Clock) Now() int64 {
	return c.now.Load()
}

// Elapsed returns ms since the fight start. The clock starts at the fight
// start, so events stamped before it (fabricated precast events) read 0.
func (c *Clock) Elapsed() int64 {
	return c.now.Load() - c.start
}

// Start returns the fight start timestamp.
func (c *Clock) Start() int64 {
	return c.start
}
