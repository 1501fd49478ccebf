// Package machine defines the opaque capability the registry uses to drive
// a single worker subprocess. Everything here is an external collaborator:
// the wire format, the worker binary, and the emulator semantics live
// outside this module. The registry only ever sees the Client interface.
package machine

import (
	"context"

	"github.com/ChuLiYu/machine-coordinator/pkg/types"
)

// Client is a bound RPC stub to one live worker. A new Client is created
// each time a worker checks in at a fresh address; it is discarded when
// that worker is snapshotted, rolled back, recreated, or shut down.
type Client interface {
	// CreateMachine builds a fresh machine from req. Called once right
	// after check-in, both for NewSession and for recreate.
	CreateMachine(ctx context.Context, req types.MachineCreationRequest) error

	// RootHash returns the machine's current Merkle root hash.
	RootHash(ctx context.Context) ([]byte, error)

	// Snapshot asks the worker to persist its current state and prepare
	// to be superseded by a replacement process. Per the snapshot
	// protocol, the worker terminates and a new one spawns and checks in;
	// this call only issues the request, it does not await the new
	// check-in (the registry does that separately).
	Snapshot(ctx context.Context) error

	// Rollback asks the worker to restore its last snapshot and, like
	// Snapshot, terminates in favor of a replacement process.
	Rollback(ctx context.Context) error

	// Run advances the machine to targetCycle. The caller guarantees
	// targetCycle >= the machine's current cycle.
	Run(ctx context.Context, targetCycle uint64) (types.RunResult, error)

	// Step executes exactly one instruction and returns its access log.
	Step(ctx context.Context) (types.AccessLog, error)

	// ReadMemory returns length bytes starting at address.
	ReadMemory(ctx context.Context, pos types.MemoryPosition) ([]byte, error)

	// WriteMemory overwrites memory starting at w.Address with w.Data.
	WriteMemory(ctx context.Context, w types.MemoryWrite) error

	// GetProof returns a Merkle proof for the given target.
	GetProof(ctx context.Context, target types.ProofTarget) (types.Proof, error)

	// Store asks the worker to export its current machine image under
	// label, returning the location it was stored at.
	Store(ctx context.Context, label string) (string, error)

	// Shutdown asks the worker to terminate cleanly. Best-effort: the
	// caller should not treat a Shutdown error as fatal, since the
	// worker may already be gone.
	Shutdown(ctx context.Context) error
}

// Dialer creates a Client bound to a worker that has checked in at address.
type Dialer func(ctx context.Context, address string) (Client, error)
