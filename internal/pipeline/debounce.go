package pipeline

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid calls per key: only the last call within the
// quiet period fires. Used for the live availability checks so fast typing
// does not issue a request per keystroke.
type Debouncer struct {
	wait   time.Duration
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{
		wait:   wait,
		timers: make(map[string]*time.Timer),
	}
}

// Call schedules fn after the quiet period, cancelling any pending call for
// the same key. fn runs on a timer goroutine.
func (d *Debouncer) Call(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.timers[key]; ok {
		timer.Stop()
	}
	d.timers[key] = time.AfterFunc(d.wait, fn)
}

// Stop cancels every pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
