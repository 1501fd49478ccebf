package registry

import (
	"context"

	"github.com/ChuLiYu/machine-coordinator/pkg/types"
)

// Defective wraps a Registry and silently corrupts RunSession's snapshot
// behavior, for exercising client retry and verification logic against a
// coordinator that cannot be trusted; every other operation is passed to
// the wrapped Registry unchanged. Selected with the --defective CLI flag;
// never used in production.
type Defective struct {
	inner *Registry
}

// NewDefective wraps an existing Registry with fault injection.
func NewDefective(inner *Registry) *Defective {
	return &Defective{inner: inner}
}

var _ Interface = (*Defective)(nil)

func (d *Defective) NewSession(ctx context.Context, id types.SessionID, req types.MachineCreationRequest, force bool) ([]byte, error) {
	return d.inner.NewSession(ctx, id, req, force)
}

func (d *Defective) EndSession(ctx context.Context, id types.SessionID) error {
	return d.inner.EndSession(ctx, id)
}

// RunSession drops the snapshot the real registry takes at the first
// requested cycle: it runs the machine forward exactly like the real
// registry but never commits a new snapshotCycle. The session keeps only
// the cycle-0 snapshot NewSession took (or none, once a rollback has
// consumed it), so a later seek below the current cycle rolls back to
// cycle 0 or recreates, instead of rolling back to the run's first cycle.
func (d *Defective) RunSession(ctx context.Context, id types.SessionID, finalCycles []uint64) ([]types.RunResult, error) {
	if err := validateCycles(finalCycles); err != nil {
		return nil, err
	}
	sess, err := d.inner.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := d.inner.requireAddress(sess); err != nil {
		return nil, err
	}

	results := make([]types.RunResult, 0, len(finalCycles))
	for _, c := range finalCycles {
		if err := d.inner.seekToCycle(ctx, sess, c); err != nil {
			return nil, err
		}
		result, err := d.inner.runAndRecordCycle(ctx, sess, c)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (d *Defective) StepSession(ctx context.Context, id types.SessionID, initialCycle uint64) (types.AccessLog, error) {
	return d.inner.StepSession(ctx, id, initialCycle)
}

func (d *Defective) SessionReadMemory(ctx context.Context, id types.SessionID, cycle uint64, pos types.MemoryPosition) ([]byte, error) {
	return d.inner.SessionReadMemory(ctx, id, cycle, pos)
}

func (d *Defective) SessionWriteMemory(ctx context.Context, id types.SessionID, cycle uint64, w types.MemoryWrite) error {
	return d.inner.SessionWriteMemory(ctx, id, cycle, w)
}

func (d *Defective) SessionGetProof(ctx context.Context, id types.SessionID, cycle uint64, target types.ProofTarget) (types.Proof, error) {
	return d.inner.SessionGetProof(ctx, id, cycle, target)
}

func (d *Defective) SessionStore(ctx context.Context, id types.SessionID, label string) (string, error) {
	return d.inner.SessionStore(ctx, id, label)
}

func (d *Defective) CommunicateAddress(id types.SessionID, address string) error {
	return d.inner.CommunicateAddress(id, address)
}

func (d *Defective) Shutdown(ctx context.Context) {
	d.inner.Shutdown(ctx)
}

func (d *Defective) IsShuttingDown() bool {
	return d.inner.IsShuttingDown()
}

func (d *Defective) Stats() Stats {
	return d.inner.Stats()
}
