// Hand-written in the shape `protoc-gen-go-grpc` emits: client and server
// interfaces plus grpc.ServiceDesc wiring, built directly off
// coordinator.proto. See messages.go for why legacy-shaped .pb.go content is
// used instead of the opaque-API generator output.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CoordinatorHighClient is the client API for the session-lifecycle service.
type CoordinatorHighClient interface {
	NewSession(ctx context.Context, in *NewSessionRequest, opts ...grpc.CallOption) (*HashResponse, error)
	EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*Void, error)
	SessionRun(ctx context.Context, in *SessionRunRequest, opts ...grpc.CallOption) (*SessionRunResponse, error)
	SessionStep(ctx context.Context, in *SessionStepRequest, opts ...grpc.CallOption) (*AccessLogPb, error)
	SessionReadMemory(ctx context.Context, in *SessionReadMemoryRequest, opts ...grpc.CallOption) (*MemoryDataResponse, error)
	SessionWriteMemory(ctx context.Context, in *SessionWriteMemoryRequest, opts ...grpc.CallOption) (*Void, error)
	SessionGetProof(ctx context.Context, in *SessionGetProofRequest, opts ...grpc.CallOption) (*ProofResponse, error)
	SessionStore(ctx context.Context, in *SessionStoreRequest, opts ...grpc.CallOption) (*LocationResponse, error)
}

type coordinatorHighClient struct {
	cc grpc.ClientConnInterface
}

func NewCoordinatorHighClient(cc grpc.ClientConnInterface) CoordinatorHighClient {
	return &coordinatorHighClient{cc}
}

func (c *coordinatorHighClient) NewSession(ctx context.Context, in *NewSessionRequest, opts ...grpc.CallOption) (*HashResponse, error) {
	out := new(HashResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/NewSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorHighClient) EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/EndSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorHighClient) SessionRun(ctx context.Context, in *SessionRunRequest, opts ...grpc.CallOption) (*SessionRunResponse, error) {
	out := new(SessionRunResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/SessionRun", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorHighClient) SessionStep(ctx context.Context, in *SessionStepRequest, opts ...grpc.CallOption) (*AccessLogPb, error) {
	out := new(AccessLogPb)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/SessionStep", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorHighClient) SessionReadMemory(ctx context.Context, in *SessionReadMemoryRequest, opts ...grpc.CallOption) (*MemoryDataResponse, error) {
	out := new(MemoryDataResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/SessionReadMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorHighClient) SessionWriteMemory(ctx context.Context, in *SessionWriteMemoryRequest, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/SessionWriteMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorHighClient) SessionGetProof(ctx context.Context, in *SessionGetProofRequest, opts ...grpc.CallOption) (*ProofResponse, error) {
	out := new(ProofResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/SessionGetProof", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorHighClient) SessionStore(ctx context.Context, in *SessionStoreRequest, opts ...grpc.CallOption) (*LocationResponse, error) {
	out := new(LocationResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorHigh/SessionStore", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CoordinatorHighServer is the server API for the session-lifecycle service.
type CoordinatorHighServer interface {
	NewSession(context.Context, *NewSessionRequest) (*HashResponse, error)
	EndSession(context.Context, *EndSessionRequest) (*Void, error)
	SessionRun(context.Context, *SessionRunRequest) (*SessionRunResponse, error)
	SessionStep(context.Context, *SessionStepRequest) (*AccessLogPb, error)
	SessionReadMemory(context.Context, *SessionReadMemoryRequest) (*MemoryDataResponse, error)
	SessionWriteMemory(context.Context, *SessionWriteMemoryRequest) (*Void, error)
	SessionGetProof(context.Context, *SessionGetProofRequest) (*ProofResponse, error)
	SessionStore(context.Context, *SessionStoreRequest) (*LocationResponse, error)
}

// UnimplementedCoordinatorHighServer can be embedded to have forward
// compatible implementations.
type UnimplementedCoordinatorHighServer struct{}

func (UnimplementedCoordinatorHighServer) NewSession(context.Context, *NewSessionRequest) (*HashResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method NewSession not implemented")
}
func (UnimplementedCoordinatorHighServer) EndSession(context.Context, *EndSessionRequest) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method EndSession not implemented")
}
func (UnimplementedCoordinatorHighServer) SessionRun(context.Context, *SessionRunRequest) (*SessionRunResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SessionRun not implemented")
}
func (UnimplementedCoordinatorHighServer) SessionStep(context.Context, *SessionStepRequest) (*AccessLogPb, error) {
	return nil, status.Error(codes.Unimplemented, "method SessionStep not implemented")
}
func (UnimplementedCoordinatorHighServer) SessionReadMemory(context.Context, *SessionReadMemoryRequest) (*MemoryDataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SessionReadMemory not implemented")
}
func (UnimplementedCoordinatorHighServer) SessionWriteMemory(context.Context, *SessionWriteMemoryRequest) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method SessionWriteMemory not implemented")
}
func (UnimplementedCoordinatorHighServer) SessionGetProof(context.Context, *SessionGetProofRequest) (*ProofResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SessionGetProof not implemented")
}
func (UnimplementedCoordinatorHighServer) SessionStore(context.Context, *SessionStoreRequest) (*LocationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SessionStore not implemented")
}

func RegisterCoordinatorHighServer(s grpc.ServiceRegistrar, srv CoordinatorHighServer) {
	s.RegisterService(&CoordinatorHigh_ServiceDesc, srv)
}

func _CoordinatorHigh_NewSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NewSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).NewSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/NewSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).NewSession(ctx, req.(*NewSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorHigh_EndSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EndSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).EndSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/EndSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).EndSession(ctx, req.(*EndSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorHigh_SessionRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).SessionRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/SessionRun"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).SessionRun(ctx, req.(*SessionRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorHigh_SessionStep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionStepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).SessionStep(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/SessionStep"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).SessionStep(ctx, req.(*SessionStepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorHigh_SessionReadMemory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionReadMemoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).SessionReadMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/SessionReadMemory"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).SessionReadMemory(ctx, req.(*SessionReadMemoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorHigh_SessionWriteMemory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionWriteMemoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).SessionWriteMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/SessionWriteMemory"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).SessionWriteMemory(ctx, req.(*SessionWriteMemoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorHigh_SessionGetProof_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionGetProofRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).SessionGetProof(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/SessionGetProof"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).SessionGetProof(ctx, req.(*SessionGetProofRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorHigh_SessionStore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionStoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorHighServer).SessionStore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorHigh/SessionStore"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorHighServer).SessionStore(ctx, req.(*SessionStoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CoordinatorHigh_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "coordinator.v1.CoordinatorHigh",
	HandlerType: (*CoordinatorHighServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NewSession", Handler: _CoordinatorHigh_NewSession_Handler},
		{MethodName: "EndSession", Handler: _CoordinatorHigh_EndSession_Handler},
		{MethodName: "SessionRun", Handler: _CoordinatorHigh_SessionRun_Handler},
		{MethodName: "SessionStep", Handler: _CoordinatorHigh_SessionStep_Handler},
		{MethodName: "SessionReadMemory", Handler: _CoordinatorHigh_SessionReadMemory_Handler},
		{MethodName: "SessionWriteMemory", Handler: _CoordinatorHigh_SessionWriteMemory_Handler},
		{MethodName: "SessionGetProof", Handler: _CoordinatorHigh_SessionGetProof_Handler},
		{MethodName: "SessionStore", Handler: _CoordinatorHigh_SessionStore_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/v1/coordinator.proto",
}

// CoordinatorLowClient is the client API for the check-in service.
type CoordinatorLowClient interface {
	CommunicateAddress(ctx context.Context, in *CommunicateAddressRequest, opts ...grpc.CallOption) (*Void, error)
}

type coordinatorLowClient struct {
	cc grpc.ClientConnInterface
}

func NewCoordinatorLowClient(cc grpc.ClientConnInterface) CoordinatorLowClient {
	return &coordinatorLowClient{cc}
}

func (c *coordinatorLowClient) CommunicateAddress(ctx context.Context, in *CommunicateAddressRequest, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.CoordinatorLow/CommunicateAddress", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CoordinatorLowServer is the server API for the check-in service.
type CoordinatorLowServer interface {
	CommunicateAddress(context.Context, *CommunicateAddressRequest) (*Void, error)
}

type UnimplementedCoordinatorLowServer struct{}

func (UnimplementedCoordinatorLowServer) CommunicateAddress(context.Context, *CommunicateAddressRequest) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method CommunicateAddress not implemented")
}

func RegisterCoordinatorLowServer(s grpc.ServiceRegistrar, srv CoordinatorLowServer) {
	s.RegisterService(&CoordinatorLow_ServiceDesc, srv)
}

func _CoordinatorLow_CommunicateAddress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommunicateAddressRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorLowServer).CommunicateAddress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.CoordinatorLow/CommunicateAddress"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorLowServer).CommunicateAddress(ctx, req.(*CommunicateAddressRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CoordinatorLow_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "coordinator.v1.CoordinatorLow",
	HandlerType: (*CoordinatorLowServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CommunicateAddress", Handler: _CoordinatorLow_CommunicateAddress_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/v1/coordinator.proto",
}
