// Package server implements the gRPC transport layer: CoordinatorHighServer
// (the client-facing session API). The check-in service (CoordinatorLow) is
// implemented separately in internal/checkin. Every long-running session
// operation is routed through a JobDispatcher so a client whose RPC
// deadline expires mid-operation can retry the identical request and
// either get told to keep waiting or pick up the completed result.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/ChuLiYu/machine-coordinator/api/proto/v1"
	"github.com/ChuLiYu/machine-coordinator/internal/dispatcher"
	"github.com/ChuLiYu/machine-coordinator/internal/registry"
	"github.com/ChuLiYu/machine-coordinator/pkg/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var log = slog.Default()

// Server implements v1.CoordinatorHighServer over a session registry and
// job dispatcher.
type Server struct {
	v1.UnimplementedCoordinatorHighServer

	registry   registry.Interface
	dispatcher *dispatcher.Dispatcher
}

// New builds a Server backed by reg, dispatching long-running operations
// through disp.
func New(reg registry.Interface, disp *dispatcher.Dispatcher) *Server {
	return &Server{registry: reg, dispatcher: disp}
}

var _ v1.CoordinatorHighServer = (*Server)(nil)

func (s *Server) NewSession(ctx context.Context, req *v1.NewSessionRequest) (*v1.HashResponse, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	creationReq, err := machineCreationRequestFromPb(req.GetMachine())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.dispatcher.TryJob(ctx, id, "NewSession", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return s.registry.NewSession(ctx, id, creationReq, req.GetForce())
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.HashResponse{RootHash: result.([]byte)}, nil
}

func (s *Server) EndSession(ctx context.Context, req *v1.EndSessionRequest) (*v1.Void, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	_, err := s.dispatcher.TryJob(ctx, id, "EndSession", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return nil, s.registry.EndSession(ctx, id)
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.Void{}, nil
}

func (s *Server) SessionRun(ctx context.Context, req *v1.SessionRunRequest) (*v1.SessionRunResponse, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	result, err := s.dispatcher.TryJob(ctx, id, "SessionRun", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return s.registry.RunSession(ctx, id, req.GetFinalCycles())
	})
	if err != nil {
		return nil, toStatusErr(err)
	}

	results := result.([]types.RunResult)
	pbResults := make([]*v1.RunResponse, len(results))
	for i, r := range results {
		pbResults[i] = runResponseToPb(r)
	}
	return &v1.SessionRunResponse{Results: pbResults}, nil
}

func (s *Server) SessionStep(ctx context.Context, req *v1.SessionStepRequest) (*v1.AccessLogPb, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	result, err := s.dispatcher.TryJob(ctx, id, "SessionStep", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return s.registry.StepSession(ctx, id, req.GetInitialCycle())
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	return accessLogToPb(result.(types.AccessLog)), nil
}

func (s *Server) SessionReadMemory(ctx context.Context, req *v1.SessionReadMemoryRequest) (*v1.MemoryDataResponse, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	pos := types.MemoryPosition{Address: req.GetPosition().GetAddress(), Length: req.GetPosition().GetLength()}
	result, err := s.dispatcher.TryJob(ctx, id, "SessionReadMemory", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return s.registry.SessionReadMemory(ctx, id, req.GetCycle(), pos)
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.MemoryDataResponse{Data: result.([]byte)}, nil
}

func (s *Server) SessionWriteMemory(ctx context.Context, req *v1.SessionWriteMemoryRequest) (*v1.Void, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	w := types.MemoryWrite{Address: req.GetPosition().GetAddress(), Data: req.GetPosition().GetData()}
	_, err := s.dispatcher.TryJob(ctx, id, "SessionWriteMemory", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return nil, s.registry.SessionWriteMemory(ctx, id, req.GetCycle(), w)
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.Void{}, nil
}

func (s *Server) SessionGetProof(ctx context.Context, req *v1.SessionGetProofRequest) (*v1.ProofResponse, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	target := types.ProofTarget{Address: req.GetTarget().GetAddress(), Log2Size: req.GetTarget().GetLog2Size()}
	result, err := s.dispatcher.TryJob(ctx, id, "SessionGetProof", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return s.registry.SessionGetProof(ctx, id, req.GetCycle(), target)
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	proof := result.(types.Proof)
	return &v1.ProofResponse{Proof: proofToPb(proof)}, nil
}

func (s *Server) SessionStore(ctx context.Context, req *v1.SessionStoreRequest) (*v1.LocationResponse, error) {
	if err := s.shuttingDownErr(); err != nil {
		return nil, err
	}
	id := types.SessionID(req.GetSessionId())
	result, err := s.dispatcher.TryJob(ctx, id, "SessionStore", fingerprint(req), func(ctx context.Context) (interface{}, error) {
		return s.registry.SessionStore(ctx, id, req.GetLabel())
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &v1.LocationResponse{Location: result.(string)}, nil
}

// --- conversions -----------------------------------------------------------

func machineCreationRequestFromPb(m *v1.MachineRequest) (types.MachineCreationRequest, error) {
	var config map[string]interface{}
	if len(m.GetConfigJson()) > 0 {
		if err := json.Unmarshal(m.GetConfigJson(), &config); err != nil {
			return types.MachineCreationRequest{}, fmt.Errorf("decode machine config: %w", err)
		}
	}
	return types.MachineCreationRequest{Config: config}, nil
}

func runResponseToPb(r types.RunResult) *v1.RunResponse {
	return &v1.RunResponse{
		Result: &v1.RunResultPb{
			TargetCycle:          r.Summary.TargetCycle,
			HaltFlag:             r.Summary.HaltFlag,
			InstructionsExecuted: r.Summary.InstructionsExecuted,
		},
		RootHash: r.RootHash,
	}
}

func accessLogToPb(accessLog types.AccessLog) *v1.AccessLogPb {
	accesses := make([]*v1.MemoryAccessPb, len(accessLog.Accesses))
	for i, a := range accessLog.Accesses {
		accesses[i] = &v1.MemoryAccessPb{Type: a.Type, Address: a.Address, Data: a.Data}
	}
	return &v1.AccessLogPb{
		InitialCycle: accessLog.InitialCycle,
		Notes:        accessLog.Notes,
		Accesses:     accesses,
	}
}

func proofToPb(p types.Proof) *v1.ProofPb {
	return &v1.ProofPb{
		TargetAddress: p.TargetAddress,
		Log2Size:      p.Log2Size,
		TargetHash:    p.TargetHash,
		RootHash:      p.RootHash,
		SiblingHashes: p.SiblingHashes,
	}
}

// shuttingDownErr gates every dispatcher entry point per §4.4: once the
// coordinator has begun draining, no new background job may start, so each
// handler checks this before calling TryJob rather than relying on
// registry.ErrShuttingDown surfacing from inside the job itself.
func (s *Server) shuttingDownErr() error {
	if s.registry.IsShuttingDown() {
		return status.Error(codes.Unavailable, "coordinator is shutting down")
	}
	return nil
}

// fingerprint is a structural-equality key for a request, used by the
// dispatcher to distinguish an idempotent retry from a genuinely new
// request for the same session.
func fingerprint(req interface{ String() string }) string {
	return req.String()
}

// toStatusErr maps the registry and dispatcher error taxonomy onto gRPC
// status codes: SessionIDError, AddressError, CycleError, and
// RollbackError are client mistakes (InvalidArgument); CheckinError,
// SessionKillError, and NotReadyError are operational (Unknown);
// ErrShuttingDown is Unavailable; anything else is Unknown, logged with
// its full error chain in place of a traceback.
func toStatusErr(err error) error {
	var sessionErr *registry.SessionIDError
	var addressErr *registry.AddressError
	var cycleErr *registry.CycleError
	var rollbackErr *registry.RollbackError
	var checkinErr *registry.CheckinError
	var killErr *registry.SessionKillError
	var notReadyErr *dispatcher.NotReadyError

	switch {
	case errors.As(err, &sessionErr), errors.As(err, &addressErr), errors.As(err, &cycleErr), errors.As(err, &rollbackErr):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &checkinErr), errors.As(err, &killErr), errors.As(err, &notReadyErr):
		return status.Error(codes.Unknown, err.Error())
	case errors.Is(err, registry.ErrShuttingDown):
		return status.Error(codes.Unavailable, err.Error())
	default:
		log.Error("unhandled coordinator error", "error", err)
		return status.Error(codes.Unknown, err.Error())
	}
}
