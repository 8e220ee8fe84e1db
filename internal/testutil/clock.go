package testutil

import "sync"

// ManualClock is a module.Clock moved by hand.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ManualClock struct {
	mu    sync.Mutex
	start int64
	now   int64
}

// NewManualClock creates a clock positioned at start.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{start: start, now: start}
}

// Set moves the clock to ts. Unlike the engine clock it may move backwards,
// so one clock can be reused across cases.
func (c *ManualClock) Set(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ts
}

// Now returns the current timestamp.
func (c *ManualClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed returns ms since start.
func (c *ManualClock) Elapsed() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now - c.start
}

// Reset moves the clock back to start.
func (c *ManualClock) Reset() {
	c.Set(c.start)
}
