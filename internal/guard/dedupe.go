package guard

import (
	"sync"
	"time"
)

type inflight struct {
	done    chan struct{}
	value   string
	err     error
	started time.Time
}

// Deduplicator coalesces concurrent calls with the same normalized key
// into a single invocation of the produce function. All callers that
// attach to an in-flight call observe its one result or one error. An
// in-flight entry older than timeout is considered wedged and replaced
// by a fresh call; late waiters on the old entry still get its result
// when it eventually settles.
type Deduplicator struct {
	mu       sync.Mutex
	inflight map[string]*inflight
	timeout  time.Duration

	now func() time.Time // test hook
}

// NewDeduplicator creates a deduplicator whose in-flight entries go
// stale after timeout.
func NewDeduplicator(timeout time.Duration) *Deduplicator {
	return &Deduplicator{
		inflight: make(map[string]*inflight),
		timeout:  timeout,
	}
}

// Do runs produce for key, unless a fresh call for the same normalized
// key is already in flight, in which case it waits for and returns that
// call's result. The in-flight registration is removed when the call
// settles, on success or failure, so results are never reused past
// settlement. Only same-key calls coalesce; distinct keys proceed
// independently and produce runs outside the lock.
func (d *Deduplicator) Do(key string, produce func() (string, error)) (string, error) {
	k := NormalizeKey(key)

	d.mu.Lock()
	if fl, ok := d.inflight[k]; ok && d.clock().Sub(fl.started) < d.timeout {
		d.mu.Unlock()
		<-fl.done
		return fl.value, fl.err
	}

	fl := &inflight{done: make(chan struct{}), started: d.clock()}
	d.inflight[k] = fl
	d.mu.Unlock()

	fl.value, fl.err = produce()
	close(fl.done)

	d.mu.Lock()
	// Only remove our own registration; a stale entry may already have
	// been replaced by a fresh call.
	if d.inflight[k] == fl {
		delete(d.inflight, k)
	}
	d.mu.Unlock()

	return fl.value, fl.err
}

// Pending returns the number of in-flight registrations.
func (d *Deduplicator) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inflight)
}

// Clear drops all in-flight registrations. Calls already attached to an
// entry still receive its result when it settles.
func (d *Deduplicator) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inflight = make(map[string]*inflight)
}

func (d *Deduplicator) clock() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}
