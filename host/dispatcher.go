package host

import (
	"context"
	"sync"
)

// defaultHistorySize bounds how many past Responses a Dispatcher retains.
const defaultHistorySize = 16

// Dispatcher wraps Dispatch with a bounded history of recent responses,
// for debugging/inspection tooling. The history ring is the one piece of
// state in this module genuinely shared across goroutines — guarded by the
// same lock-and-defer-unlock critical-section shape the teacher uses around
// its policy state (c.lock.Lock(); defer c.lock.Unlock()). The simulation
// core itself (policy.Policy, simulator.Run) stays single-threaded and
// lock-free, per spec: a Dispatcher's own Dispatch calls still fan out
// independent policy/driver instances concurrently without needing this lock
// at all.
type Dispatcher struct {
	size int

	lock    sync.Mutex
	history []Response
}

// NewDispatcher constructs a Dispatcher retaining up to size past
// responses (defaultHistorySize if size <= 0).
func NewDispatcher(size int) *Dispatcher {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &Dispatcher{size: size}
}

// Dispatch runs req through Dispatch and records a successful response in
// history before returning it; a failed dispatch is not recorded.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Response, error) {
	resp, err := Dispatch(ctx, req)
	if err != nil {
		return resp, err
	}

	d.lock.Lock()
	defer d.lock.Unlock()
	d.history = append(d.history, resp)
	if len(d.history) > d.size {
		d.history = d.history[len(d.history)-d.size:]
	}

	return resp, nil
}

// History returns a copy of the currently retained responses, oldest
// first.
func (d *Dispatcher) History() []Response {
	d.lock.Lock()
	defer d.lock.Unlock()
	out := make([]Response, len(d.history))
	copy(out, d.history)
	return out
}
