package debounce

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Debouncer runs only the last function passed to Call once no further
// calls arrive for the wait period. It is safe for concurrent use.
type Debouncer struct {
	debounced func(f func())

	mu      sync.Mutex
	pending func()
	stopped bool
}

func New(wait time.Duration) *Debouncer {
	return &Debouncer{debounced: debounce.New(wait)}
}

// Call schedules fn, replacing any call still waiting.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.pending = fn
	d.mu.Unlock()

	d.debounced(d.run)
}

// Flush runs the waiting call now, if any. The timer that is still armed
// finds nothing to run.
func (d *Debouncer) Flush() {
	d.run()
}

// Stop drops the waiting call and ignores every later Call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = nil
	d.stopped = true
}

// Pending reports whether a call is waiting.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) run() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}
