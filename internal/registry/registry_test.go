package registry

// ============================================================================
// Session Registry test file
// Purpose: exercise NewSession/RunSession/StepSession against a fake worker,
// including the check-in rendezvous, rollback, and recreate paths.
// ============================================================================

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ChuLiYu/machine-coordinator/internal/launcher"
	"github.com/ChuLiYu/machine-coordinator/internal/machine"
	"github.com/ChuLiYu/machine-coordinator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorker is one simulated machine process: a cycle counter and the
// snapshot it was last told to take.
type fakeWorker struct {
	mu            sync.Mutex
	cycle         uint64
	snapshotCycle uint64
	hasSnapshot   bool
	memory        map[uint64]byte
	alive         bool
}

// fakeClient implements machine.Client against one fakeWorker.
type fakeClient struct {
	worker *fakeWorker
}

func (c *fakeClient) CreateMachine(ctx context.Context, req types.MachineCreationRequest) error {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	c.worker.cycle = 0
	c.worker.memory = make(map[uint64]byte)
	c.worker.alive = true
	return nil
}

func (c *fakeClient) RootHash(ctx context.Context) ([]byte, error) {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	return []byte(fmt.Sprintf("hash@%d", c.worker.cycle)), nil
}

func (c *fakeClient) Snapshot(ctx context.Context) error {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	c.worker.snapshotCycle = c.worker.cycle
	c.worker.hasSnapshot = true
	c.worker.alive = false
	return nil
}

func (c *fakeClient) Rollback(ctx context.Context) error {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	if !c.worker.hasSnapshot {
		return fmt.Errorf("no snapshot")
	}
	c.worker.cycle = c.worker.snapshotCycle
	c.worker.alive = false
	return nil
}

func (c *fakeClient) Run(ctx context.Context, targetCycle uint64) (types.RunResult, error) {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	c.worker.cycle = targetCycle
	return types.RunResult{
		Summary:  types.RunSummary{TargetCycle: targetCycle},
		RootHash: []byte(fmt.Sprintf("hash@%d", targetCycle)),
	}, nil
}

func (c *fakeClient) Step(ctx context.Context) (types.AccessLog, error) {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	log := types.AccessLog{InitialCycle: c.worker.cycle}
	c.worker.cycle++
	return log, nil
}

func (c *fakeClient) ReadMemory(ctx context.Context, pos types.MemoryPosition) ([]byte, error) {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	data := make([]byte, pos.Length)
	for i := range data {
		data[i] = c.worker.memory[pos.Address+uint64(i)]
	}
	return data, nil
}

func (c *fakeClient) WriteMemory(ctx context.Context, w types.MemoryWrite) error {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	for i, b := range w.Data {
		c.worker.memory[w.Address+uint64(i)] = b
	}
	return nil
}

func (c *fakeClient) GetProof(ctx context.Context, target types.ProofTarget) (types.Proof, error) {
	return types.Proof{TargetAddress: target.Address, Log2Size: target.Log2Size}, nil
}

func (c *fakeClient) Store(ctx context.Context, label string) (string, error) {
	return "/tmp/" + label, nil
}

func (c *fakeClient) Shutdown(ctx context.Context) error {
	c.worker.mu.Lock()
	defer c.worker.mu.Unlock()
	c.worker.alive = false
	return nil
}

// fakeLauncher simulates spawning a worker: each Launch creates a fresh
// fakeWorker and, after a short delay on a goroutine, posts its address to
// the registry via CommunicateAddress — exercising the real check-in
// rendezvous instead of stubbing it out.
type fakeLauncher struct {
	mu       sync.Mutex
	reg      *Registry
	workers  map[types.SessionID]*fakeWorker
	nextAddr int
	noSpawn  bool // when true, Launch never checks in (to test timeout)
}

func newFakeLauncher() *fakeLauncher {
	return &fakeLauncher{workers: make(map[types.SessionID]*fakeWorker)}
}

func (l *fakeLauncher) Launch(ctx context.Context, sessionID types.SessionID, checkinAddress string) error {
	if l.noSpawn {
		return nil
	}
	l.mu.Lock()
	l.nextAddr++
	addr := fmt.Sprintf("worker-%d", l.nextAddr)
	worker := &fakeWorker{alive: true}
	if existing, ok := l.workers[sessionID]; ok {
		worker.cycle = existing.cycle
		worker.snapshotCycle = existing.snapshotCycle
		worker.hasSnapshot = existing.hasSnapshot
		worker.memory = existing.memory
	} else {
		worker.memory = make(map[uint64]byte)
	}
	l.workers[sessionID] = worker
	l.mu.Unlock()

	go func() {
		time.Sleep(5 * time.Millisecond)
		_ = l.reg.CommunicateAddress(sessionID, addr)
	}()
	return nil
}

func (l *fakeLauncher) Kill(ctx context.Context, sessionID types.SessionID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.workers, sessionID)
	return nil
}

func (l *fakeLauncher) dial(ctx context.Context, address string) (machine.Client, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.workers {
		if w.alive {
			return &fakeClient{worker: w}, nil
		}
	}
	return nil, fmt.Errorf("no live worker for address %s", address)
}

var _ launcher.WorkerLauncher = (*fakeLauncher)(nil)

func newTestRegistry() (*Registry, *fakeLauncher) {
	fl := newFakeLauncher()
	reg := New(fl.dial, fl, "localhost:9999", nil)
	fl.reg = reg
	return reg, fl
}

func TestNewSession_ReturnsInitialHashAndSnapshotsAtZero(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	hash, err := reg.NewSession(ctx, "s1", types.MachineCreationRequest{}, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("hash@0"), hash)

	stats := reg.Stats()
	assert.Equal(t, 1, stats.ActiveSessions)

	reg.mu.Lock()
	sess := reg.sessions["s1"]
	reg.mu.Unlock()
	require.NotNil(t, sess.snapshotCycle)
	assert.Equal(t, uint64(0), *sess.snapshotCycle)
}

func TestNewSession_DuplicateWithoutForceFails(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	_, err := reg.NewSession(ctx, "s1", types.MachineCreationRequest{}, false)
	require.NoError(t, err)

	_, err = reg.NewSession(ctx, "s1", types.MachineCreationRequest{}, false)
	require.Error(t, err)
	var sessionErr *SessionIDError
	assert.ErrorAs(t, err, &sessionErr)
}

func TestRunSession_MonotoneRunSetsCycleAndSnapshot(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	_, err := reg.NewSession(ctx, "s2", types.MachineCreationRequest{}, false)
	require.NoError(t, err)

	results, err := reg.RunSession(ctx, "s2", []uint64{10, 20, 30})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []byte("hash@30"), results[2].RootHash)

	reg.mu.Lock()
	sess := reg.sessions["s2"]
	reg.mu.Unlock()
	assert.Equal(t, uint64(30), sess.cycle)
	require.NotNil(t, sess.snapshotCycle)
	assert.Equal(t, uint64(10), *sess.snapshotCycle)
}

func TestSessionReadMemory_RollbackPathWhenCycleBetweenSnapshotAndCurrent(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	_, err := reg.NewSession(ctx, "s3", types.MachineCreationRequest{}, false)
	require.NoError(t, err)
	_, err = reg.RunSession(ctx, "s3", []uint64{10, 20, 30})
	require.NoError(t, err)

	_, err = reg.SessionReadMemory(ctx, "s3", 15, types.MemoryPosition{Address: 0, Length: 4})
	require.NoError(t, err)

	reg.mu.Lock()
	sess := reg.sessions["s3"]
	reg.mu.Unlock()
	assert.Equal(t, uint64(15), sess.cycle)
	assert.Nil(t, sess.snapshotCycle)
}

func TestSessionReadMemory_RecreatePathWhenBelowSnapshot(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	_, err := reg.NewSession(ctx, "s3b", types.MachineCreationRequest{}, false)
	require.NoError(t, err)
	_, err = reg.RunSession(ctx, "s3b", []uint64{10, 20, 30})
	require.NoError(t, err)

	_, err = reg.SessionReadMemory(ctx, "s3b", 5, types.MemoryPosition{Address: 0, Length: 4})
	require.NoError(t, err)

	reg.mu.Lock()
	sess := reg.sessions["s3b"]
	reg.mu.Unlock()
	assert.Equal(t, uint64(5), sess.cycle)
	assert.Nil(t, sess.snapshotCycle)
}

func TestRunSession_EmptyCyclesFails(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	_, err := reg.NewSession(ctx, "s4", types.MachineCreationRequest{}, false)
	require.NoError(t, err)

	_, err = reg.RunSession(ctx, "s4", nil)
	require.Error(t, err)
	var cycleErr *CycleError
	assert.ErrorAs(t, err, &cycleErr)
}

func TestStepSession_AtCycleZeroOnNewbornSession(t *testing.T) {
	reg, _ := newTestRegistry()
	ctx := context.Background()

	_, err := reg.NewSession(ctx, "s5", types.MachineCreationRequest{}, false)
	require.NoError(t, err)

	accessLog, err := reg.StepSession(ctx, "s5", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), accessLog.InitialCycle)
}

func TestCheckinTimeout_RemovesSessionAndReturnsCheckinError(t *testing.T) {
	fl := newFakeLauncher()
	fl.noSpawn = true
	reg := New(fl.dial, fl, "localhost:9999", nil)
	fl.reg = reg

	ctx := context.Background()
	done := make(chan error, 1)
	go func() {
		_, err := reg.NewSession(ctx, "s6", types.MachineCreationRequest{}, false)
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		var checkinErr *CheckinError
		assert.ErrorAs(t, err, &checkinErr)
	case <-time.After(CheckinWaitTimeout + 2*time.Second):
		t.Fatal("NewSession did not return after checkin timeout")
	}

	_, err := reg.lookup("s6")
	require.Error(t, err)
}
