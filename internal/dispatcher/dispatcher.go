// ============================================================================
// Job Dispatcher
// ============================================================================
//
// Package: internal/dispatcher
// Purpose: serialize and deduplicate long-running per-session RPCs so a
// slow registry call can return "not ready yet" to a client instead of
// blocking the RPC past its deadline, while an idempotent retry of the
// same request picks up the completed result exactly once.
//
// State: one JobSlot per session id, holding the fingerprint of the
// request currently running or just completed and a future for its
// result. tryJob is the only entry point; its branches mirror the decision
// table in the component design doc (the first two rows share one branch,
// since a missing slot is created empty before the switch):
//
//   no slot              -> start work, NotReady
//   slot empty            -> start work, NotReady
//   slot running           -> NotReady
//   slot done, same fingerprint    -> reset slot, return result
//   slot done, different fingerprint -> reset slot, NotReady
//
// ============================================================================

package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ChuLiYu/machine-coordinator/pkg/types"
)

// NotReadyError signals that a background job has been started or is still
// running; the client must retry the identical request.
type NotReadyError struct {
	Message string
}

func (e *NotReadyError) Error() string { return e.Message }

// MetricsSink receives dispatcher-level observability events. A nil sink
// disables instrumentation.
type MetricsSink interface {
	JobLatency(method string, seconds float64)
	JobsInFlight(delta int)
	NotReady()
}

// future holds the outcome of one background job once it finishes.
type future struct {
	done   chan struct{}
	result interface{}
	err    error
}

func newFuture() *future {
	return &future{done: make(chan struct{})}
}

func (f *future) complete(result interface{}, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

func (f *future) isDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// jobSlot is the per-session dispatcher entry.
type jobSlot struct {
	mu          sync.Mutex
	fingerprint string
	future      *future
}

// Dispatcher deduplicates at most one in-flight background job per
// session id.
type Dispatcher struct {
	mu      sync.Mutex
	slots   map[types.SessionID]*jobSlot
	metrics MetricsSink
}

// New builds an empty Dispatcher.
func New(sink MetricsSink) *Dispatcher {
	return &Dispatcher{
		slots:   make(map[types.SessionID]*jobSlot),
		metrics: sink,
	}
}

// TryJob implements the tryJob contract described in the package doc
// comment. method labels the job for metrics (e.g. "SessionRun").
// fingerprint is a structural-equality key for the request; work is run on
// its own goroutine and must not itself be cancelled by ctx cancellation
// (per §5, background jobs run to completion regardless of client
// cancellation).
func (d *Dispatcher) TryJob(ctx context.Context, id types.SessionID, method, fingerprint string, work func(context.Context) (interface{}, error)) (interface{}, error) {
	d.mu.Lock()
	slot, ok := d.slots[id]
	if !ok {
		slot = &jobSlot{}
		d.slots[id] = slot
	}
	d.mu.Unlock()

	slot.mu.Lock()
	defer slot.mu.Unlock()

	switch {
	case slot.future == nil:
		d.start(slot, id, method, fingerprint, work)
		return nil, d.notReady(method, id)

	case !slot.future.isDone():
		return nil, d.notReady(method, id)

	case fingerprint == slot.fingerprint:
		f := slot.future
		slot.future = nil
		slot.fingerprint = ""
		return f.result, f.err

	default:
		slot.future = nil
		slot.fingerprint = ""
		return nil, d.notReady(method, id)
	}
}

func (d *Dispatcher) start(slot *jobSlot, id types.SessionID, method, fingerprint string, work func(context.Context) (interface{}, error)) {
	slot.fingerprint = fingerprint
	slot.future = newFuture()
	f := slot.future

	if d.metrics != nil {
		d.metrics.JobsInFlight(1)
	}
	started := time.Now()

	go func() {
		result, err := work(context.Background())
		f.complete(result, err)
		if d.metrics != nil {
			d.metrics.JobsInFlight(-1)
			d.metrics.JobLatency(method, time.Since(started).Seconds())
		}
	}()
}

func (d *Dispatcher) notReady(method string, id types.SessionID) error {
	if d.metrics != nil {
		d.metrics.NotReady()
	}
	return &NotReadyError{Message: fmt.Sprintf("result is not yet ready for %s: %s", method, id)}
}
