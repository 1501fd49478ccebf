package registry

import (
	"sync"

	"github.com/ChuLiYu/machine-coordinator/internal/machine"
	"github.com/ChuLiYu/machine-coordinator/pkg/types"
)

// session is one entry in the registry: the lifecycle state of exactly one
// live-or-being-replaced worker. All stateful operations on a session hold
// sessionLock for their full duration; the registry's global lock only ever
// touches the map itself and brief field reads/writes below.
type session struct {
	id types.SessionID

	sessionLock sync.Mutex

	// address, cycle, and snapshotCycle are written under the registry's
	// global lock — a caller holding sessionLock still takes the global lock
	// for a field write. address and snapshotCycle are also read under it;
	// cycle is only written by holders of sessionLock, and some of those
	// holders read it under sessionLock alone.
	address       string
	cycle         uint64
	snapshotCycle *uint64 // nil: no snapshot taken yet

	creationMachineReq types.MachineCreationRequest

	// client is the live RPC handle to this session's worker, redialed
	// every time launchAndAwait completes. Never touched without
	// sessionLock held.
	client machine.Client

	// checkinSignal carries the address a worker announced for this
	// session. It is buffered so a check-in that arrives before the
	// registry starts waiting is not lost: the send succeeds into the
	// buffer and is picked up whenever launchAndAwait next waits.
	checkinSignal chan string
}

func newSession(id types.SessionID) *session {
	return &session{
		id:            id,
		checkinSignal: make(chan string, 1),
	}
}

// hasAddress reports whether the session currently has a live worker
// address. Callers must hold the registry's global lock.
func (s *session) hasAddress() bool {
	return s.address != ""
}

// drainSignal discards a stale, unconsumed check-in signal before a new
// await sequence begins.
func (s *session) drainSignal() {
	select {
	case <-s.checkinSignal:
	default:
	}
}
