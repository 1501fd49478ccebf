// Package v1 holds the wire types shared by the coordinator's client-facing,
// worker-facing, and check-in gRPC services.
//
// These are hand-written in the shape `protoc-gen-go` would have emitted for
// proto3 messages under the legacy (pre-opaque-API) generator: plain structs
// with `protobuf` struct tags plus Reset/String/ProtoMessage. grpc-go's
// default codec (google.golang.org/grpc/encoding/proto) accepts this shape
// directly — it detects the legacy v1 proto.Message interface and wraps it
// with protoadapt.MessageV2Of before marshaling through
// google.golang.org/protobuf, exactly as it does for any message generated
// before the opaque API migration. The corresponding .proto sources live
// alongside this file for documentation and as the source of truth for field
// numbers and types.
package v1

import "fmt"

// Void carries no data. Used where an RPC has nothing to return but an
// acknowledgement, or nothing to send but a bare request.
type Void struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Void) Reset()         { *m = Void{} }
func (m *Void) String() string { return fmt.Sprintf("%+v", *m) }
func (*Void) ProtoMessage()    {}

// MachineRequest carries the machine construction parameters as opaque JSON,
// forwarded verbatim from types.MachineCreationRequest.
type MachineRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	ConfigJson []byte `protobuf:"bytes,1,opt,name=config_json,json=configJson,proto3" json:"config_json,omitempty"`
}

func (m *MachineRequest) Reset()         { *m = MachineRequest{} }
func (m *MachineRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*MachineRequest) ProtoMessage()    {}

func (m *MachineRequest) GetConfigJson() []byte {
	if m != nil {
		return m.ConfigJson
	}
	return nil
}

// HashResponse carries a single Merkle root hash.
type HashResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	RootHash []byte `protobuf:"bytes,1,opt,name=root_hash,json=rootHash,proto3" json:"root_hash,omitempty"`
}

func (m *HashResponse) Reset()         { *m = HashResponse{} }
func (m *HashResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*HashResponse) ProtoMessage()    {}

func (m *HashResponse) GetRootHash() []byte {
	if m != nil {
		return m.RootHash
	}
	return nil
}

// RunRequest asks the machine to advance to TargetCycle.
type RunRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	TargetCycle uint64 `protobuf:"varint,1,opt,name=target_cycle,json=targetCycle,proto3" json:"target_cycle,omitempty"`
}

func (m *RunRequest) Reset()         { *m = RunRequest{} }
func (m *RunRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunRequest) ProtoMessage()    {}

func (m *RunRequest) GetTargetCycle() uint64 {
	if m != nil {
		return m.TargetCycle
	}
	return 0
}

// RunResultPb mirrors types.RunSummary.
type RunResultPb struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	TargetCycle          uint64 `protobuf:"varint,1,opt,name=target_cycle,json=targetCycle,proto3" json:"target_cycle,omitempty"`
	HaltFlag             bool   `protobuf:"varint,2,opt,name=halt_flag,json=haltFlag,proto3" json:"halt_flag,omitempty"`
	InstructionsExecuted uint64 `protobuf:"varint,3,opt,name=instructions_executed,json=instructionsExecuted,proto3" json:"instructions_executed,omitempty"`
}

func (m *RunResultPb) Reset()         { *m = RunResultPb{} }
func (m *RunResultPb) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunResultPb) ProtoMessage()    {}

func (m *RunResultPb) GetTargetCycle() uint64 {
	if m != nil {
		return m.TargetCycle
	}
	return 0
}

func (m *RunResultPb) GetHaltFlag() bool {
	if m != nil {
		return m.HaltFlag
	}
	return false
}

func (m *RunResultPb) GetInstructionsExecuted() uint64 {
	if m != nil {
		return m.InstructionsExecuted
	}
	return 0
}

// RunResponse mirrors types.RunResult.
type RunResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Result   *RunResultPb `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	RootHash []byte       `protobuf:"bytes,2,opt,name=root_hash,json=rootHash,proto3" json:"root_hash,omitempty"`
}

func (m *RunResponse) Reset()         { *m = RunResponse{} }
func (m *RunResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunResponse) ProtoMessage()    {}

func (m *RunResponse) GetResult() *RunResultPb {
	if m != nil {
		return m.Result
	}
	return nil
}

func (m *RunResponse) GetRootHash() []byte {
	if m != nil {
		return m.RootHash
	}
	return nil
}

// MemoryAccessPb mirrors types.MemoryAccess.
type MemoryAccessPb struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Type    string `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Address uint64 `protobuf:"varint,2,opt,name=address,proto3" json:"address,omitempty"`
	Data    []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MemoryAccessPb) Reset()         { *m = MemoryAccessPb{} }
func (m *MemoryAccessPb) String() string { return fmt.Sprintf("%+v", *m) }
func (*MemoryAccessPb) ProtoMessage()    {}

func (m *MemoryAccessPb) GetType() string {
	if m != nil {
		return m.Type
	}
	return ""
}

func (m *MemoryAccessPb) GetAddress() uint64 {
	if m != nil {
		return m.Address
	}
	return 0
}

func (m *MemoryAccessPb) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

// AccessLogPb mirrors types.AccessLog.
type AccessLogPb struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	InitialCycle uint64            `protobuf:"varint,1,opt,name=initial_cycle,json=initialCycle,proto3" json:"initial_cycle,omitempty"`
	Notes        []string          `protobuf:"bytes,2,rep,name=notes,proto3" json:"notes,omitempty"`
	Accesses     []*MemoryAccessPb `protobuf:"bytes,3,rep,name=accesses,proto3" json:"accesses,omitempty"`
}

func (m *AccessLogPb) Reset()         { *m = AccessLogPb{} }
func (m *AccessLogPb) String() string { return fmt.Sprintf("%+v", *m) }
func (*AccessLogPb) ProtoMessage()    {}

func (m *AccessLogPb) GetInitialCycle() uint64 {
	if m != nil {
		return m.InitialCycle
	}
	return 0
}

func (m *AccessLogPb) GetNotes() []string {
	if m != nil {
		return m.Notes
	}
	return nil
}

func (m *AccessLogPb) GetAccesses() []*MemoryAccessPb {
	if m != nil {
		return m.Accesses
	}
	return nil
}

// MemoryPositionPb mirrors types.MemoryPosition.
type MemoryPositionPb struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Address uint64 `protobuf:"varint,1,opt,name=address,proto3" json:"address,omitempty"`
	Length  uint64 `protobuf:"varint,2,opt,name=length,proto3" json:"length,omitempty"`
}

func (m *MemoryPositionPb) Reset()         { *m = MemoryPositionPb{} }
func (m *MemoryPositionPb) String() string { return fmt.Sprintf("%+v", *m) }
func (*MemoryPositionPb) ProtoMessage()    {}

// MemoryDataResponse carries bytes read from machine memory.
type MemoryDataResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MemoryDataResponse) Reset()         { *m = MemoryDataResponse{} }
func (m *MemoryDataResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MemoryDataResponse) ProtoMessage()    {}

func (m *MemoryDataResponse) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

// MemoryWritePb mirrors types.MemoryWrite.
type MemoryWritePb struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Address uint64 `protobuf:"varint,1,opt,name=address,proto3" json:"address,omitempty"`
	Data    []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MemoryWritePb) Reset()         { *m = MemoryWritePb{} }
func (m *MemoryWritePb) String() string { return fmt.Sprintf("%+v", *m) }
func (*MemoryWritePb) ProtoMessage()    {}

// ProofTargetPb mirrors types.ProofTarget.
type ProofTargetPb struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Address  uint64 `protobuf:"varint,1,opt,name=address,proto3" json:"address,omitempty"`
	Log2Size uint64 `protobuf:"varint,2,opt,name=log2_size,json=log2Size,proto3" json:"log2_size,omitempty"`
}

func (m *ProofTargetPb) Reset()         { *m = ProofTargetPb{} }
func (m *ProofTargetPb) String() string { return fmt.Sprintf("%+v", *m) }
func (*ProofTargetPb) ProtoMessage()    {}

// ProofPb mirrors types.Proof.
type ProofPb struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	TargetAddress uint64   `protobuf:"varint,1,opt,name=target_address,json=targetAddress,proto3" json:"target_address,omitempty"`
	Log2Size      uint64   `protobuf:"varint,2,opt,name=log2_size,json=log2Size,proto3" json:"log2_size,omitempty"`
	TargetHash    []byte   `protobuf:"bytes,3,opt,name=target_hash,json=targetHash,proto3" json:"target_hash,omitempty"`
	RootHash      []byte   `protobuf:"bytes,4,opt,name=root_hash,json=rootHash,proto3" json:"root_hash,omitempty"`
	SiblingHashes [][]byte `protobuf:"bytes,5,rep,name=sibling_hashes,json=siblingHashes,proto3" json:"sibling_hashes,omitempty"`
}

func (m *ProofPb) Reset()         { *m = ProofPb{} }
func (m *ProofPb) String() string { return fmt.Sprintf("%+v", *m) }
func (*ProofPb) ProtoMessage()    {}

func (m *ProofPb) GetTargetAddress() uint64 {
	if m != nil {
		return m.TargetAddress
	}
	return 0
}

func (m *ProofPb) GetLog2Size() uint64 {
	if m != nil {
		return m.Log2Size
	}
	return 0
}

func (m *ProofPb) GetTargetHash() []byte {
	if m != nil {
		return m.TargetHash
	}
	return nil
}

func (m *ProofPb) GetRootHash() []byte {
	if m != nil {
		return m.RootHash
	}
	return nil
}

func (m *ProofPb) GetSiblingHashes() [][]byte {
	if m != nil {
		return m.SiblingHashes
	}
	return nil
}

// ProofResponse wraps a ProofPb.
type ProofResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Proof *ProofPb `protobuf:"bytes,1,opt,name=proof,proto3" json:"proof,omitempty"`
}

func (m *ProofResponse) Reset()         { *m = ProofResponse{} }
func (m *ProofResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ProofResponse) ProtoMessage()    {}

func (m *ProofResponse) GetProof() *ProofPb {
	if m != nil {
		return m.Proof
	}
	return nil
}

// StoreRequest asks the worker to export its machine image under Label.
type StoreRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Label string `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
}

func (m *StoreRequest) Reset()         { *m = StoreRequest{} }
func (m *StoreRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StoreRequest) ProtoMessage()    {}

// LocationResponse carries the storage location returned by Store.
type LocationResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Location string `protobuf:"bytes,1,opt,name=location,proto3" json:"location,omitempty"`
}

func (m *LocationResponse) Reset()         { *m = LocationResponse{} }
func (m *LocationResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*LocationResponse) ProtoMessage()    {}

func (m *LocationResponse) GetLocation() string {
	if m != nil {
		return m.Location
	}
	return ""
}

// NewSessionRequest asks the registry to bring up a session named SessionId,
// building its machine from Machine. Force, when set, tears down and
// recreates a session that already exists instead of returning
// SessionIdError.
type NewSessionRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId string          `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Machine   *MachineRequest `protobuf:"bytes,2,opt,name=machine,proto3" json:"machine,omitempty"`
	Force     bool            `protobuf:"varint,3,opt,name=force,proto3" json:"force,omitempty"`
}

func (m *NewSessionRequest) Reset()         { *m = NewSessionRequest{} }
func (m *NewSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*NewSessionRequest) ProtoMessage()    {}

func (m *NewSessionRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *NewSessionRequest) GetMachine() *MachineRequest {
	if m != nil {
		return m.Machine
	}
	return nil
}

func (m *NewSessionRequest) GetForce() bool {
	if m != nil {
		return m.Force
	}
	return false
}

// EndSessionRequest tears a session down and kills its worker.
type EndSessionRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
}

func (m *EndSessionRequest) Reset()         { *m = EndSessionRequest{} }
func (m *EndSessionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*EndSessionRequest) ProtoMessage()    {}

func (m *EndSessionRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

// SessionRunRequest advances a session through each of FinalCycles in order.
type SessionRunRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId   string   `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	FinalCycles []uint64 `protobuf:"varint,2,rep,packed,name=final_cycles,json=finalCycles,proto3" json:"final_cycles,omitempty"`
}

func (m *SessionRunRequest) Reset()         { *m = SessionRunRequest{} }
func (m *SessionRunRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionRunRequest) ProtoMessage()    {}

func (m *SessionRunRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SessionRunRequest) GetFinalCycles() []uint64 {
	if m != nil {
		return m.FinalCycles
	}
	return nil
}

// SessionRunResponse carries one RunResponse per requested final cycle.
type SessionRunResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	Results []*RunResponse `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *SessionRunResponse) Reset()         { *m = SessionRunResponse{} }
func (m *SessionRunResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionRunResponse) ProtoMessage()    {}

func (m *SessionRunResponse) GetResults() []*RunResponse {
	if m != nil {
		return m.Results
	}
	return nil
}

// SessionStepRequest asks a session to execute one instruction starting at
// InitialCycle.
type SessionStepRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId    string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	InitialCycle uint64 `protobuf:"varint,2,opt,name=initial_cycle,json=initialCycle,proto3" json:"initial_cycle,omitempty"`
}

func (m *SessionStepRequest) Reset()         { *m = SessionStepRequest{} }
func (m *SessionStepRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionStepRequest) ProtoMessage()    {}

func (m *SessionStepRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SessionStepRequest) GetInitialCycle() uint64 {
	if m != nil {
		return m.InitialCycle
	}
	return 0
}

// SessionReadMemoryRequest reads memory from a session at Cycle.
type SessionReadMemoryRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId string            `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Cycle     uint64            `protobuf:"varint,2,opt,name=cycle,proto3" json:"cycle,omitempty"`
	Position  *MemoryPositionPb `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
}

func (m *SessionReadMemoryRequest) Reset()         { *m = SessionReadMemoryRequest{} }
func (m *SessionReadMemoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionReadMemoryRequest) ProtoMessage()    {}

func (m *SessionReadMemoryRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SessionReadMemoryRequest) GetCycle() uint64 {
	if m != nil {
		return m.Cycle
	}
	return 0
}

func (m *SessionReadMemoryRequest) GetPosition() *MemoryPositionPb {
	if m != nil {
		return m.Position
	}
	return nil
}

func (m *MemoryPositionPb) GetAddress() uint64 {
	if m != nil {
		return m.Address
	}
	return 0
}

func (m *MemoryPositionPb) GetLength() uint64 {
	if m != nil {
		return m.Length
	}
	return 0
}

// SessionWriteMemoryRequest writes memory to a session at Cycle.
type SessionWriteMemoryRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId string         `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Cycle     uint64         `protobuf:"varint,2,opt,name=cycle,proto3" json:"cycle,omitempty"`
	Position  *MemoryWritePb `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
}

func (m *SessionWriteMemoryRequest) Reset()         { *m = SessionWriteMemoryRequest{} }
func (m *SessionWriteMemoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionWriteMemoryRequest) ProtoMessage()    {}

func (m *SessionWriteMemoryRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SessionWriteMemoryRequest) GetCycle() uint64 {
	if m != nil {
		return m.Cycle
	}
	return 0
}

func (m *SessionWriteMemoryRequest) GetPosition() *MemoryWritePb {
	if m != nil {
		return m.Position
	}
	return nil
}

func (m *MemoryWritePb) GetAddress() uint64 {
	if m != nil {
		return m.Address
	}
	return 0
}

func (m *MemoryWritePb) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

// SessionGetProofRequest requests a Merkle proof from a session at Cycle.
type SessionGetProofRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId string         `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Cycle     uint64         `protobuf:"varint,2,opt,name=cycle,proto3" json:"cycle,omitempty"`
	Target    *ProofTargetPb `protobuf:"bytes,3,opt,name=target,proto3" json:"target,omitempty"`
}

func (m *SessionGetProofRequest) Reset()         { *m = SessionGetProofRequest{} }
func (m *SessionGetProofRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionGetProofRequest) ProtoMessage()    {}

func (m *SessionGetProofRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SessionGetProofRequest) GetCycle() uint64 {
	if m != nil {
		return m.Cycle
	}
	return 0
}

func (m *SessionGetProofRequest) GetTarget() *ProofTargetPb {
	if m != nil {
		return m.Target
	}
	return nil
}

func (m *ProofTargetPb) GetAddress() uint64 {
	if m != nil {
		return m.Address
	}
	return 0
}

func (m *ProofTargetPb) GetLog2Size() uint64 {
	if m != nil {
		return m.Log2Size
	}
	return 0
}

// SessionStoreRequest asks a session's worker to export its machine image.
type SessionStoreRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Label     string `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
}

func (m *SessionStoreRequest) Reset()         { *m = SessionStoreRequest{} }
func (m *SessionStoreRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SessionStoreRequest) ProtoMessage()    {}

func (m *SessionStoreRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *SessionStoreRequest) GetLabel() string {
	if m != nil {
		return m.Label
	}
	return ""
}

// CommunicateAddressRequest is how a freshly-spawned worker announces where
// it is listening, keyed by the session id it was launched for.
type CommunicateAddressRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`

	SessionId string `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Address   string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *CommunicateAddressRequest) Reset()         { *m = CommunicateAddressRequest{} }
func (m *CommunicateAddressRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CommunicateAddressRequest) ProtoMessage()    {}

func (m *CommunicateAddressRequest) GetSessionId() string {
	if m != nil {
		return m.SessionId
	}
	return ""
}

func (m *CommunicateAddressRequest) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}
