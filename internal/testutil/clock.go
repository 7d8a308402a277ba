package testutil

import (
	"sync"
	"time"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

// FakeSource is a manually driven clock for tests.
//
// Unlike tuiotime.SystemSource, FakeSource only moves when told to, so the
// same test produces identical readings on every run.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FakeSource struct {
	mu    sync.Mutex
	now   tuiotime.Time
	reads int64
}

// NewFakeSource creates a fake clock reading (sec, usec).
func NewFakeSource(sec, usec int64) *FakeSource {
	return &FakeSource{now: tuiotime.New(sec, usec)}
}

// Now implements tuiotime.Source.
func (c *FakeSource) Now() tuiotime.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	return tuiotime.Reading{Sec: c.now.Seconds(), Usec: c.now.Microseconds()}
}

// Set moves the clock to (sec, usec).
func (c *FakeSource) Set(sec, usec int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = tuiotime.New(sec, usec)
}

// Advance moves the clock by d. Negative d moves it backwards.
func (c *FakeSource) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(tuiotime.FromDuration(d))
}

// Reads returns how many times Now has been called.
func (c *FakeSource) Reads() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

var _ tuiotime.Source = (*FakeSource)(nil)
