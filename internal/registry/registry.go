// ============================================================================
// Session Registry
// ============================================================================
//
// Package: internal/registry
// Purpose: own every session's lifecycle state and drive its worker through
// create/run/step/read/write/proof, transparently snapshotting, rolling
// back, or recreating the worker whenever a request needs a cycle the
// worker cannot reach by running forward.
//
// Cycle-seek state machine:
//   cycle == target             -> no-op, still re-issues the run/step RPC
//   cycle <  target             -> advance: worker.Run(target)
//   cycle >  target, no snapshot -> recreate, then re-evaluate
//   cycle >  target, snapshot <= target -> rollback, then re-evaluate
//   cycle >  target, snapshot >  target -> recreate, then re-evaluate
//
// Snapshot and rollback both terminate the current worker and await a
// fresh check-in from its replacement; recreate does the same but replays
// the original creation request instead of resuming from saved state.
//
// Locking order: session.sessionLock (held across worker calls and check-in
// waits) outside registry.mu (brief, map + field touches only). registry.mu
// is always released before a sessionLock is acquired, so the two are never
// acquired in the opposite order.
//
// ============================================================================

package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ChuLiYu/machine-coordinator/internal/launcher"
	"github.com/ChuLiYu/machine-coordinator/internal/machine"
	"github.com/ChuLiYu/machine-coordinator/pkg/types"
)

// CheckinWaitTimeout bounds how long the registry waits for a worker to
// report its address after being spawned, snapshotted, rolled back, or
// recreated.
const CheckinWaitTimeout = 5 * time.Second

var log = slog.Default()

// ErrShuttingDown is returned by NewSession while the coordinator is
// draining. The registry's other operations do not check the draining flag.
var ErrShuttingDown = fmt.Errorf("coordinator is shutting down")

// Stats is a point-in-time snapshot of registry occupancy.
type Stats struct {
	ActiveSessions int
	ShuttingDown   bool
}

// MetricsSink receives lifecycle events for observability. Any type with
// these methods satisfies it; internal/metrics.Collector is the production
// implementation. A nil sink is valid and simply means no metrics.
type MetricsSink interface {
	SessionCreated()
	SessionEnded()
	CheckinTimeout()
	Rollback()
	Recreate()
	SnapshotTaken()
	ActiveSessions(n int)
}

// Interface is the contract both Registry and the defective test-seam
// implementation satisfy. The gRPC server depends on this, not on Registry
// directly.
type Interface interface {
	NewSession(ctx context.Context, id types.SessionID, req types.MachineCreationRequest, force bool) ([]byte, error)
	EndSession(ctx context.Context, id types.SessionID) error
	RunSession(ctx context.Context, id types.SessionID, finalCycles []uint64) ([]types.RunResult, error)
	StepSession(ctx context.Context, id types.SessionID, initialCycle uint64) (types.AccessLog, error)
	SessionReadMemory(ctx context.Context, id types.SessionID, cycle uint64, pos types.MemoryPosition) ([]byte, error)
	SessionWriteMemory(ctx context.Context, id types.SessionID, cycle uint64, w types.MemoryWrite) error
	SessionGetProof(ctx context.Context, id types.SessionID, cycle uint64, target types.ProofTarget) (types.Proof, error)
	SessionStore(ctx context.Context, id types.SessionID, label string) (string, error)
	CommunicateAddress(id types.SessionID, address string) error
	Shutdown(ctx context.Context)
	IsShuttingDown() bool
	Stats() Stats
}

// Registry is the production SessionRegistry.
type Registry struct {
	mu             sync.Mutex
	sessions       map[types.SessionID]*session
	dialer         machine.Dialer
	launcher       launcher.WorkerLauncher
	checkinAddress string
	metrics        MetricsSink
	shuttingDown   bool
}

// New builds a Registry. checkinAddress is the coordinator's own
// CheckinService address, passed to every spawned worker so it knows where
// to report in.
func New(dialer machine.Dialer, wl launcher.WorkerLauncher, checkinAddress string, sink MetricsSink) *Registry {
	return &Registry{
		sessions:       make(map[types.SessionID]*session),
		dialer:         dialer,
		launcher:       wl,
		checkinAddress: checkinAddress,
		metrics:        sink,
	}
}

var _ Interface = (*Registry)(nil)

func (r *Registry) NewSession(ctx context.Context, id types.SessionID, req types.MachineCreationRequest, force bool) ([]byte, error) {
	sess, err := r.registerSession(ctx, id, force)
	if err != nil {
		return nil, err
	}

	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := r.launchAndAwait(ctx, sess); err != nil {
		return nil, err
	}
	if err := sess.client.CreateMachine(ctx, req); err != nil {
		return nil, fmt.Errorf("create machine for session %q: %w", id, err)
	}

	r.mu.Lock()
	sess.creationMachineReq = req
	r.mu.Unlock()

	hash, err := sess.client.RootHash(ctx)
	if err != nil {
		return nil, fmt.Errorf("get root hash for session %q: %w", id, err)
	}

	if err := r.snapshot(ctx, sess); err != nil {
		return nil, err
	}

	log.Info("session created", "sessionID", id, "cycle", sess.cycle)
	if r.metrics != nil {
		r.metrics.SessionCreated()
		r.metrics.ActiveSessions(r.activeCount())
	}
	return hash, nil
}

func (r *Registry) EndSession(ctx context.Context, id types.SessionID) error {
	sess, err := r.lookup(id)
	if err != nil {
		return err
	}

	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	r.mu.Lock()
	hasAddr := sess.hasAddress()
	r.mu.Unlock()
	if !hasAddr {
		return &AddressError{SessionID: string(id), Reason: "address not set, check if machine server was created correctly"}
	}

	if sess.client != nil {
		if err := sess.client.Shutdown(ctx); err != nil {
			log.Warn("worker shutdown RPC failed, falling back to kill", "sessionID", id, "error", err)
			if killErr := r.launcher.Kill(ctx, id); killErr != nil {
				return &SessionKillError{SessionID: string(id), Cause: killErr}
			}
		}
	}

	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()

	log.Info("session ended", "sessionID", id)
	if r.metrics != nil {
		r.metrics.SessionEnded()
		r.metrics.ActiveSessions(r.activeCount())
	}
	return nil
}

func (r *Registry) RunSession(ctx context.Context, id types.SessionID, finalCycles []uint64) ([]types.RunResult, error) {
	if err := validateCycles(finalCycles); err != nil {
		return nil, err
	}

	sess, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := r.requireAddress(sess); err != nil {
		return nil, err
	}

	first := finalCycles[0]
	if err := r.seekToCycle(ctx, sess, first); err != nil {
		return nil, err
	}
	firstResult, err := r.runAndRecordCycle(ctx, sess, first)
	if err != nil {
		return nil, err
	}
	if err := r.snapshot(ctx, sess); err != nil {
		return nil, err
	}

	results := make([]types.RunResult, 0, len(finalCycles))
	results = append(results, firstResult)

	for _, c := range finalCycles[1:] {
		if err := r.seekToCycle(ctx, sess, c); err != nil {
			return nil, err
		}
		result, err := r.runAndRecordCycle(ctx, sess, c)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Registry) StepSession(ctx context.Context, id types.SessionID, initialCycle uint64) (types.AccessLog, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return types.AccessLog{}, err
	}

	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := r.requireAddress(sess); err != nil {
		return types.AccessLog{}, err
	}

	if sess.cycle != initialCycle {
		if err := r.seekToCycle(ctx, sess, initialCycle); err != nil {
			return types.AccessLog{}, err
		}
		if initialCycle > 0 {
			if _, err := r.runAndRecordCycle(ctx, sess, initialCycle); err != nil {
				return types.AccessLog{}, err
			}
		}
	}

	accessLog, err := sess.client.Step(ctx)
	if err != nil {
		return types.AccessLog{}, fmt.Errorf("step session %q: %w", id, err)
	}
	r.mu.Lock()
	sess.cycle++
	r.mu.Unlock()
	return accessLog, nil
}

func (r *Registry) SessionReadMemory(ctx context.Context, id types.SessionID, cycle uint64, pos types.MemoryPosition) ([]byte, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := r.requireAddress(sess); err != nil {
		return nil, err
	}
	if err := r.seekToCycle(ctx, sess, cycle); err != nil {
		return nil, err
	}
	if _, err := r.runAndRecordCycle(ctx, sess, cycle); err != nil {
		return nil, err
	}
	return sess.client.ReadMemory(ctx, pos)
}

func (r *Registry) SessionWriteMemory(ctx context.Context, id types.SessionID, cycle uint64, w types.MemoryWrite) error {
	sess, err := r.lookup(id)
	if err != nil {
		return err
	}
	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := r.requireAddress(sess); err != nil {
		return err
	}
	if err := r.seekToCycle(ctx, sess, cycle); err != nil {
		return err
	}
	if _, err := r.runAndRecordCycle(ctx, sess, cycle); err != nil {
		return err
	}
	return sess.client.WriteMemory(ctx, w)
}

func (r *Registry) SessionGetProof(ctx context.Context, id types.SessionID, cycle uint64, target types.ProofTarget) (types.Proof, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return types.Proof{}, err
	}
	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := r.requireAddress(sess); err != nil {
		return types.Proof{}, err
	}
	if err := r.seekToCycle(ctx, sess, cycle); err != nil {
		return types.Proof{}, err
	}
	if _, err := r.runAndRecordCycle(ctx, sess, cycle); err != nil {
		return types.Proof{}, err
	}
	return sess.client.GetProof(ctx, target)
}

func (r *Registry) SessionStore(ctx context.Context, id types.SessionID, label string) (string, error) {
	sess, err := r.lookup(id)
	if err != nil {
		return "", err
	}
	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()

	if err := r.requireAddress(sess); err != nil {
		return "", err
	}
	return sess.client.Store(ctx, label)
}

func (r *Registry) CommunicateAddress(id types.SessionID, address string) error {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return &SessionIDError{SessionID: string(id), Reason: "no session in registry with provided session id"}
	}
	sess.address = address
	r.mu.Unlock()

	select {
	case sess.checkinSignal <- address:
	default:
	}
	return nil
}

func (r *Registry) Shutdown(ctx context.Context) {
	r.mu.Lock()
	r.shuttingDown = true
	ids := make([]types.SessionID, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.mu.Lock()
		sess, ok := r.sessions[id]
		r.mu.Unlock()
		if !ok {
			continue
		}
		sess.sessionLock.Lock()
		r.mu.Lock()
		hasAddr := sess.hasAddress()
		r.mu.Unlock()
		if hasAddr && sess.client != nil {
			if err := sess.client.Shutdown(ctx); err != nil {
				log.Warn("shutdown worker failed during drain", "sessionID", id, "error", err)
			}
		}
		sess.sessionLock.Unlock()
	}
}

func (r *Registry) IsShuttingDown() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shuttingDown
}

func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{ActiveSessions: len(r.sessions), ShuttingDown: r.shuttingDown}
}

// --- internal helpers -------------------------------------------------

func (r *Registry) activeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) lookup(id types.SessionID) (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, &SessionIDError{SessionID: string(id), Reason: "no session in registry with provided session id"}
	}
	return sess, nil
}

func (r *Registry) requireAddress(sess *session) error {
	r.mu.Lock()
	ok := sess.hasAddress()
	r.mu.Unlock()
	if !ok {
		return &AddressError{SessionID: string(sess.id), Reason: "address not set, check if machine server was created correctly"}
	}
	return nil
}

func (r *Registry) registerSession(ctx context.Context, id types.SessionID, force bool) (*session, error) {
	r.mu.Lock()
	if r.shuttingDown {
		r.mu.Unlock()
		return nil, ErrShuttingDown
	}
	existing, exists := r.sessions[id]
	if exists && !force {
		r.mu.Unlock()
		return nil, &SessionIDError{SessionID: string(id), Reason: "trying to register a session with a session id that already exists"}
	}
	sess := newSession(id)
	r.sessions[id] = sess
	r.mu.Unlock()

	if exists && force {
		r.shutdownWorker(ctx, existing)
	}
	log.Info("new session registered", "sessionID", id)
	return sess, nil
}

func (r *Registry) shutdownWorker(ctx context.Context, sess *session) {
	sess.sessionLock.Lock()
	defer sess.sessionLock.Unlock()
	if sess.client != nil {
		if err := sess.client.Shutdown(ctx); err != nil {
			log.Warn("shutdown of superseded worker failed", "sessionID", sess.id, "error", err)
		}
	}
	if err := r.launcher.Kill(ctx, sess.id); err != nil {
		log.Warn("kill of superseded worker failed", "sessionID", sess.id, "error", err)
	}
}

// seekToCycle restores sess so that sess.cycle <= target, rolling back or
// recreating as many times as the decision table calls for. It never
// advances forward; the caller issues the forward run itself.
func (r *Registry) seekToCycle(ctx context.Context, sess *session, target uint64) error {
	for sess.cycle > target {
		r.mu.Lock()
		snap := sess.snapshotCycle
		r.mu.Unlock()

		if snap != nil && *snap <= target {
			if err := r.rollback(ctx, sess); err != nil {
				return err
			}
		} else {
			if err := r.recreate(ctx, sess); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Registry) runAndRecordCycle(ctx context.Context, sess *session, c uint64) (types.RunResult, error) {
	result, err := sess.client.Run(ctx, c)
	if err != nil {
		return types.RunResult{}, fmt.Errorf("run session %q to cycle %d: %w", sess.id, c, err)
	}
	r.mu.Lock()
	sess.cycle = c
	r.mu.Unlock()
	log.Debug("advanced session cycle", "sessionID", sess.id, "cycle", c)
	return result, nil
}

// snapshot issues the snapshot RPC, then awaits the replacement worker's
// check-in and commits snapshotCycle <- cycle.
func (r *Registry) snapshot(ctx context.Context, sess *session) error {
	if err := sess.client.Snapshot(ctx); err != nil {
		return fmt.Errorf("snapshot session %q: %w", sess.id, err)
	}
	r.mu.Lock()
	sess.address = ""
	r.mu.Unlock()

	if err := r.launchAndAwait(ctx, sess); err != nil {
		return err
	}

	r.mu.Lock()
	cycle := sess.cycle
	sess.snapshotCycle = &cycle
	r.mu.Unlock()

	log.Debug("snapshot committed", "sessionID", sess.id, "snapshotCycle", cycle)
	if r.metrics != nil {
		r.metrics.SnapshotTaken()
	}
	return nil
}

// rollback issues the rollback RPC, then awaits the replacement worker's
// check-in and commits cycle <- snapshotCycle, snapshotCycle <- unset.
func (r *Registry) rollback(ctx context.Context, sess *session) error {
	r.mu.Lock()
	snap := sess.snapshotCycle
	r.mu.Unlock()
	if snap == nil {
		return &RollbackError{SessionID: string(sess.id)}
	}

	if err := sess.client.Rollback(ctx); err != nil {
		return fmt.Errorf("rollback session %q: %w", sess.id, err)
	}
	r.mu.Lock()
	sess.address = ""
	r.mu.Unlock()

	if err := r.launchAndAwait(ctx, sess); err != nil {
		return err
	}

	r.mu.Lock()
	sess.cycle = *sess.snapshotCycle
	sess.snapshotCycle = nil
	r.mu.Unlock()

	log.Debug("rollback committed", "sessionID", sess.id, "cycle", sess.cycle)
	if r.metrics != nil {
		r.metrics.Rollback()
	}
	return nil
}

// recreate shuts down the current worker (if any), zeroes session state,
// launches a fresh worker, and replays the original creation request. It
// lands at cycle 0; the caller advances forward from there.
func (r *Registry) recreate(ctx context.Context, sess *session) error {
	if sess.client != nil {
		if err := sess.client.Shutdown(ctx); err != nil {
			log.Warn("shutdown before recreate failed, continuing", "sessionID", sess.id, "error", err)
		}
	}

	r.mu.Lock()
	sess.address = ""
	sess.cycle = 0
	sess.snapshotCycle = nil
	r.mu.Unlock()

	if err := r.launchAndAwait(ctx, sess); err != nil {
		return err
	}
	if err := sess.client.CreateMachine(ctx, sess.creationMachineReq); err != nil {
		return fmt.Errorf("recreate machine for session %q: %w", sess.id, err)
	}

	log.Debug("recreate committed", "sessionID", sess.id)
	if r.metrics != nil {
		r.metrics.Recreate()
	}
	return nil
}

// launchAndAwait spawns a worker and blocks until it checks in or
// CheckinWaitTimeout elapses. On timeout the session is removed from the
// registry and its subprocess is force-killed, per §4.1's timeout clause.
func (r *Registry) launchAndAwait(ctx context.Context, sess *session) error {
	sess.drainSignal()
	if err := r.launcher.Launch(ctx, sess.id, r.checkinAddress); err != nil {
		return fmt.Errorf("launch worker for session %q: %w", sess.id, err)
	}

	select {
	case addr := <-sess.checkinSignal:
		client, err := r.dialer(ctx, addr)
		if err != nil {
			return fmt.Errorf("dial worker for session %q at %s: %w", sess.id, addr, err)
		}
		sess.client = client
		return nil
	case <-time.After(CheckinWaitTimeout):
		r.removeAndKill(ctx, sess.id)
		if r.metrics != nil {
			r.metrics.CheckinTimeout()
		}
		return &CheckinError{SessionID: string(sess.id)}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Registry) removeAndKill(ctx context.Context, id types.SessionID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	if err := r.launcher.Kill(ctx, id); err != nil {
		log.Warn("kill after checkin timeout failed", "sessionID", id, "error", err)
	}
}

func validateCycles(cycles []uint64) error {
	if len(cycles) == 0 {
		return &CycleError{Reason: "final cycles list must not be empty"}
	}
	for i := 1; i < len(cycles); i++ {
		if cycles[i] <= cycles[i-1] {
			return &CycleError{Reason: "final cycles must be strictly ascending"}
		}
	}
	return nil
}
