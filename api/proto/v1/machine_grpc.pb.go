// Hand-written in the shape `protoc-gen-go-grpc` emits, built directly off
// machine.proto. See messages.go for why legacy-shaped .pb.go content is
// used instead of the opaque-API generator output.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MachineServiceClient is the client API spoken to one worker subprocess.
type MachineServiceClient interface {
	CreateMachine(ctx context.Context, in *MachineRequest, opts ...grpc.CallOption) (*Void, error)
	RootHash(ctx context.Context, in *Void, opts ...grpc.CallOption) (*HashResponse, error)
	Snapshot(ctx context.Context, in *Void, opts ...grpc.CallOption) (*Void, error)
	Rollback(ctx context.Context, in *Void, opts ...grpc.CallOption) (*Void, error)
	Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (*RunResponse, error)
	Step(ctx context.Context, in *Void, opts ...grpc.CallOption) (*AccessLogPb, error)
	ReadMemory(ctx context.Context, in *MemoryPositionPb, opts ...grpc.CallOption) (*MemoryDataResponse, error)
	WriteMemory(ctx context.Context, in *MemoryWritePb, opts ...grpc.CallOption) (*Void, error)
	GetProof(ctx context.Context, in *ProofTargetPb, opts ...grpc.CallOption) (*ProofResponse, error)
	Store(ctx context.Context, in *StoreRequest, opts ...grpc.CallOption) (*LocationResponse, error)
	Shutdown(ctx context.Context, in *Void, opts ...grpc.CallOption) (*Void, error)
}

type machineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMachineServiceClient(cc grpc.ClientConnInterface) MachineServiceClient {
	return &machineServiceClient{cc}
}

func (c *machineServiceClient) CreateMachine(ctx context.Context, in *MachineRequest, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/CreateMachine", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) RootHash(ctx context.Context, in *Void, opts ...grpc.CallOption) (*HashResponse, error) {
	out := new(HashResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/RootHash", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) Snapshot(ctx context.Context, in *Void, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/Snapshot", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) Rollback(ctx context.Context, in *Void, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/Rollback", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (*RunResponse, error) {
	out := new(RunResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/Run", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) Step(ctx context.Context, in *Void, opts ...grpc.CallOption) (*AccessLogPb, error) {
	out := new(AccessLogPb)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/Step", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) ReadMemory(ctx context.Context, in *MemoryPositionPb, opts ...grpc.CallOption) (*MemoryDataResponse, error) {
	out := new(MemoryDataResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/ReadMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) WriteMemory(ctx context.Context, in *MemoryWritePb, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/WriteMemory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) GetProof(ctx context.Context, in *ProofTargetPb, opts ...grpc.CallOption) (*ProofResponse, error) {
	out := new(ProofResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/GetProof", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) Store(ctx context.Context, in *StoreRequest, opts ...grpc.CallOption) (*LocationResponse, error) {
	out := new(LocationResponse)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/Store", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *machineServiceClient) Shutdown(ctx context.Context, in *Void, opts ...grpc.CallOption) (*Void, error) {
	out := new(Void)
	if err := c.cc.Invoke(ctx, "/coordinator.v1.MachineService/Shutdown", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MachineServiceServer is the server API implemented by the worker binary.
type MachineServiceServer interface {
	CreateMachine(context.Context, *MachineRequest) (*Void, error)
	RootHash(context.Context, *Void) (*HashResponse, error)
	Snapshot(context.Context, *Void) (*Void, error)
	Rollback(context.Context, *Void) (*Void, error)
	Run(context.Context, *RunRequest) (*RunResponse, error)
	Step(context.Context, *Void) (*AccessLogPb, error)
	ReadMemory(context.Context, *MemoryPositionPb) (*MemoryDataResponse, error)
	WriteMemory(context.Context, *MemoryWritePb) (*Void, error)
	GetProof(context.Context, *ProofTargetPb) (*ProofResponse, error)
	Store(context.Context, *StoreRequest) (*LocationResponse, error)
	Shutdown(context.Context, *Void) (*Void, error)
}

type UnimplementedMachineServiceServer struct{}

func (UnimplementedMachineServiceServer) CreateMachine(context.Context, *MachineRequest) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMachine not implemented")
}
func (UnimplementedMachineServiceServer) RootHash(context.Context, *Void) (*HashResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RootHash not implemented")
}
func (UnimplementedMachineServiceServer) Snapshot(context.Context, *Void) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method Snapshot not implemented")
}
func (UnimplementedMachineServiceServer) Rollback(context.Context, *Void) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method Rollback not implemented")
}
func (UnimplementedMachineServiceServer) Run(context.Context, *RunRequest) (*RunResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Run not implemented")
}
func (UnimplementedMachineServiceServer) Step(context.Context, *Void) (*AccessLogPb, error) {
	return nil, status.Error(codes.Unimplemented, "method Step not implemented")
}
func (UnimplementedMachineServiceServer) ReadMemory(context.Context, *MemoryPositionPb) (*MemoryDataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReadMemory not implemented")
}
func (UnimplementedMachineServiceServer) WriteMemory(context.Context, *MemoryWritePb) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method WriteMemory not implemented")
}
func (UnimplementedMachineServiceServer) GetProof(context.Context, *ProofTargetPb) (*ProofResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProof not implemented")
}
func (UnimplementedMachineServiceServer) Store(context.Context, *StoreRequest) (*LocationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Store not implemented")
}
func (UnimplementedMachineServiceServer) Shutdown(context.Context, *Void) (*Void, error) {
	return nil, status.Error(codes.Unimplemented, "method Shutdown not implemented")
}

func RegisterMachineServiceServer(s grpc.ServiceRegistrar, srv MachineServiceServer) {
	s.RegisterService(&MachineService_ServiceDesc, srv)
}

func _MachineService_CreateMachine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MachineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).CreateMachine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/CreateMachine"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).CreateMachine(ctx, req.(*MachineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_RootHash_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Void)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).RootHash(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/RootHash"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).RootHash(ctx, req.(*Void))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_Snapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Void)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).Snapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/Snapshot"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).Snapshot(ctx, req.(*Void))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_Rollback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Void)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).Rollback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/Rollback"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).Rollback(ctx, req.(*Void))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_Run_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).Run(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/Run"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).Run(ctx, req.(*RunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_Step_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Void)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).Step(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/Step"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).Step(ctx, req.(*Void))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_ReadMemory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MemoryPositionPb)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).ReadMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/ReadMemory"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).ReadMemory(ctx, req.(*MemoryPositionPb))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_WriteMemory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MemoryWritePb)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).WriteMemory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/WriteMemory"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).WriteMemory(ctx, req.(*MemoryWritePb))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_GetProof_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProofTargetPb)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).GetProof(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/GetProof"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).GetProof(ctx, req.(*ProofTargetPb))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_Store_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).Store(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/Store"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).Store(ctx, req.(*StoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MachineService_Shutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Void)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MachineServiceServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/coordinator.v1.MachineService/Shutdown"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MachineServiceServer).Shutdown(ctx, req.(*Void))
	}
	return interceptor(ctx, in, info, handler)
}

var MachineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "coordinator.v1.MachineService",
	HandlerType: (*MachineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateMachine", Handler: _MachineService_CreateMachine_Handler},
		{MethodName: "RootHash", Handler: _MachineService_RootHash_Handler},
		{MethodName: "Snapshot", Handler: _MachineService_Snapshot_Handler},
		{MethodName: "Rollback", Handler: _MachineService_Rollback_Handler},
		{MethodName: "Run", Handler: _MachineService_Run_Handler},
		{MethodName: "Step", Handler: _MachineService_Step_Handler},
		{MethodName: "ReadMemory", Handler: _MachineService_ReadMemory_Handler},
		{MethodName: "WriteMemory", Handler: _MachineService_WriteMemory_Handler},
		{MethodName: "GetProof", Handler: _MachineService_GetProof_Handler},
		{MethodName: "Store", Handler: _MachineService_Store_Handler},
		{MethodName: "Shutdown", Handler: _MachineService_Shutdown_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/v1/machine.proto",
}
