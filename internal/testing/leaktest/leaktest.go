// Package leaktest detects goroutine leaks in tests that start and stop
// background workers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Checker records the goroutine count at creation so Check can compare
// against it after the code under test has shut down.
type Checker struct {
	before int
	t      testing.TB
}

// New records the current goroutine count.
func New(t testing.TB) *Checker {
	t.Helper()

	// Let background goroutines from earlier tests settle first
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &Checker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines outlived the
// code under test. Retries briefly because goroutine teardown is
// asynchronous.
func (c *Checker) Check(tolerance int) {
	c.t.Helper()

	deadline := time.Now().Add(time.Second)
	var leaked int
	for {
		runtime.Gosched()
		runtime.GC()
		leaked = runtime.NumGoroutine() - c.before
		if leaked <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if leaked > tolerance {
		c.t.Errorf("potential goroutine leak: before=%d leaked=%d (tolerance=%d)",
			c.before, leaked, tolerance)
	}
}
