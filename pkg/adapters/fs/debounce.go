package fs

import (
	"sync"
	"time"
)

// debouncer collapses bursts of filesystem events into a single
// trailing callback. Editors and atomic renames produce several events
// per logical change; observers only care about the last one.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// add schedules fn to run after the interval, resetting any pending
// schedule. Calls after stop are ignored.
func (d *debouncer) add(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// stop cancels any pending callback and rejects new ones.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
