// Package debounce delays a task until its trigger has been quiet for a
// fixed window. Search-as-you-type callers reset the window on every
// keystroke so only the final query fires.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once the delay
// elapses without another trigger. Superseded triggers never run.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, cancelling any pending one.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending task, if any. It does not wait for a task that
// has already started.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
