// ============================================================================
// Machine Coordinator Core Type Definitions
// ============================================================================
//
// Package: pkg/types
// Purpose: Core domain models shared between the session registry, the job
// dispatcher, and the gRPC transport layer.
//
// Core Types:
//   - SessionID / MachineCreationRequest: session identity and how to build
//     a machine from scratch (needed again on recreate).
//   - MemoryPosition / MemoryWrite: addressed byte ranges read from or
//     written to a machine's memory.
//   - ProofTarget / Proof: Merkle proof request/response shape.
//   - RunSummary / RunResult: per-cycle outcome of SessionRun.
//   - AccessLog: the instruction-level trace returned by SessionStep.
//
// ============================================================================

package types

// SessionID uniquely identifies a session within the registry.
type SessionID string

// MachineCreationRequest carries the parameters used to build a machine.
// It is opaque to the registry beyond being retained verbatim to support
// recreate-from-scratch.
type MachineCreationRequest struct {
	// Config holds the machine's construction parameters (ROM/RAM images,
	// flash drives, initial hash, etc). The registry never inspects these
	// fields; it forwards them to MachineClient.CreateMachine verbatim.
	Config map[string]interface{} `json:"config"`
}

// MemoryPosition identifies a byte range within machine memory.
type MemoryPosition struct {
	Address uint64 `json:"address"`
	Length  uint64 `json:"length"`
}

// MemoryWrite identifies a byte range to overwrite within machine memory.
type MemoryWrite struct {
	Address uint64 `json:"address"`
	Data    []byte `json:"data"`
}

// ProofTarget identifies the memory range a Merkle proof is requested for.
type ProofTarget struct {
	Address  uint64 `json:"address"`
	Log2Size uint64 `json:"log2_size"`
}

// Proof is a Merkle proof over machine memory, rooted at the machine's hash.
type Proof struct {
	TargetAddress uint64   `json:"target_address"`
	Log2Size      uint64   `json:"log2_size"`
	TargetHash    []byte   `json:"target_hash"`
	RootHash      []byte   `json:"root_hash"`
	SiblingHashes [][]byte `json:"sibling_hashes"`
}

// RunSummary is the per-cycle outcome of advancing a machine to a target
// cycle, returned alongside the post-run root hash.
type RunSummary struct {
	TargetCycle          uint64 `json:"target_cycle"`
	HaltFlag             bool   `json:"halt_flag"`
	InstructionsExecuted uint64 `json:"instructions_executed"`
}

// RunResult pairs a run summary with the machine's root hash after that run.
type RunResult struct {
	Summary  RunSummary `json:"summary"`
	RootHash []byte     `json:"root_hash"`
}

// AccessLog is the instruction-level trace produced by a single step.
type AccessLog struct {
	InitialCycle uint64         `json:"initial_cycle"`
	Notes        []string       `json:"notes"`
	Accesses     []MemoryAccess `json:"accesses"`
}

// MemoryAccess records one read or write performed during a step.
type MemoryAccess struct {
	Type    string `json:"type"` // "read" or "write"
	Address uint64 `json:"address"`
	Data    []byte `json:"data"`
}
