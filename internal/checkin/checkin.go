// Package checkin implements the low-level gRPC service workers call back
// into once they have finished starting up: CommunicateAddress. It is a
// thin adapter over the registry's own CommunicateAddress method, existing
// as its own package because it is served as a separate gRPC service
// (CoordinatorLow) from the high-level session operations.
package checkin

import (
	"context"
	"errors"

	v1 "github.com/ChuLiYu/machine-coordinator/api/proto/v1"
	"github.com/ChuLiYu/machine-coordinator/internal/registry"
	"github.com/ChuLiYu/machine-coordinator/pkg/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Registry is the subset of registry.Interface the check-in service needs.
type Registry interface {
	CommunicateAddress(id types.SessionID, address string) error
}

// Service implements v1.CoordinatorLowServer.
type Service struct {
	v1.UnimplementedCoordinatorLowServer
	registry Registry
}

// New builds a check-in Service backed by reg.
func New(reg Registry) *Service {
	return &Service{registry: reg}
}

var _ v1.CoordinatorLowServer = (*Service)(nil)

// CommunicateAddress records the address a worker reports for its session,
// unblocking anyone in the registry waiting on that session's check-in.
func (s *Service) CommunicateAddress(ctx context.Context, req *v1.CommunicateAddressRequest) (*v1.Void, error) {
	err := s.registry.CommunicateAddress(types.SessionID(req.GetSessionId()), req.GetAddress())
	if err == nil {
		return &v1.Void{}, nil
	}

	var sessionErr *registry.SessionIDError
	if errors.As(err, &sessionErr) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return nil, status.Error(codes.Unknown, err.Error())
}
