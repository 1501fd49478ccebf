package machine

import (
	"context"
	"encoding/json"
	"fmt"

	v1 "github.com/ChuLiYu/machine-coordinator/api/proto/v1"
	"github.com/ChuLiYu/machine-coordinator/pkg/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcClient is the real Client implementation, backed by a gRPC connection
// to a single worker process's MachineService.
type grpcClient struct {
	conn *grpc.ClientConn
	stub v1.MachineServiceClient
}

// DialGRPC is the Dialer used in production: it opens an insecure gRPC
// connection to address and wraps it as a Client. Workers are trusted local
// subprocesses launched by this coordinator, so plaintext transport matches
// the check-in model described by the registry.
func DialGRPC(ctx context.Context, address string) (Client, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial worker at %s: %w", address, err)
	}
	return &grpcClient{conn: conn, stub: v1.NewMachineServiceClient(conn)}, nil
}

func (c *grpcClient) CreateMachine(ctx context.Context, req types.MachineCreationRequest) error {
	configJSON, err := json.Marshal(req.Config)
	if err != nil {
		return fmt.Errorf("marshal machine config: %w", err)
	}
	_, err = c.stub.CreateMachine(ctx, &v1.MachineRequest{ConfigJson: configJSON})
	return err
}

func (c *grpcClient) RootHash(ctx context.Context) ([]byte, error) {
	resp, err := c.stub.RootHash(ctx, &v1.Void{})
	if err != nil {
		return nil, err
	}
	return resp.GetRootHash(), nil
}

func (c *grpcClient) Snapshot(ctx context.Context) error {
	_, err := c.stub.Snapshot(ctx, &v1.Void{})
	return err
}

func (c *grpcClient) Rollback(ctx context.Context) error {
	_, err := c.stub.Rollback(ctx, &v1.Void{})
	return err
}

func (c *grpcClient) Run(ctx context.Context, targetCycle uint64) (types.RunResult, error) {
	resp, err := c.stub.Run(ctx, &v1.RunRequest{TargetCycle: targetCycle})
	if err != nil {
		return types.RunResult{}, err
	}
	return runResultFromPb(resp), nil
}

func (c *grpcClient) Step(ctx context.Context) (types.AccessLog, error) {
	resp, err := c.stub.Step(ctx, &v1.Void{})
	if err != nil {
		return types.AccessLog{}, err
	}
	return accessLogFromPb(resp), nil
}

func (c *grpcClient) ReadMemory(ctx context.Context, pos types.MemoryPosition) ([]byte, error) {
	resp, err := c.stub.ReadMemory(ctx, &v1.MemoryPositionPb{Address: pos.Address, Length: pos.Length})
	if err != nil {
		return nil, err
	}
	return resp.GetData(), nil
}

func (c *grpcClient) WriteMemory(ctx context.Context, w types.MemoryWrite) error {
	_, err := c.stub.WriteMemory(ctx, &v1.MemoryWritePb{Address: w.Address, Data: w.Data})
	return err
}

func (c *grpcClient) GetProof(ctx context.Context, target types.ProofTarget) (types.Proof, error) {
	resp, err := c.stub.GetProof(ctx, &v1.ProofTargetPb{Address: target.Address, Log2Size: target.Log2Size})
	if err != nil {
		return types.Proof{}, err
	}
	return proofFromPb(resp.GetProof()), nil
}

func (c *grpcClient) Store(ctx context.Context, label string) (string, error) {
	resp, err := c.stub.Store(ctx, &v1.StoreRequest{Label: label})
	if err != nil {
		return "", err
	}
	return resp.GetLocation(), nil
}

func (c *grpcClient) Shutdown(ctx context.Context) error {
	_, err := c.stub.Shutdown(ctx, &v1.Void{})
	closeErr := c.conn.Close()
	if err != nil {
		return err
	}
	return closeErr
}

func runResultFromPb(resp *v1.RunResponse) types.RunResult {
	result := resp.GetResult()
	return types.RunResult{
		Summary: types.RunSummary{
			TargetCycle:          result.GetTargetCycle(),
			HaltFlag:             result.GetHaltFlag(),
			InstructionsExecuted: result.GetInstructionsExecuted(),
		},
		RootHash: resp.GetRootHash(),
	}
}

func accessLogFromPb(resp *v1.AccessLogPb) types.AccessLog {
	accesses := make([]types.MemoryAccess, 0, len(resp.GetAccesses()))
	for _, a := range resp.GetAccesses() {
		accesses = append(accesses, types.MemoryAccess{
			Type:    a.GetType(),
			Address: a.GetAddress(),
			Data:    a.GetData(),
		})
	}
	return types.AccessLog{
		InitialCycle: resp.GetInitialCycle(),
		Notes:        resp.GetNotes(),
		Accesses:     accesses,
	}
}

func proofFromPb(p *v1.ProofPb) types.Proof {
	return types.Proof{
		TargetAddress: p.GetTargetAddress(),
		Log2Size:      p.GetLog2Size(),
		TargetHash:    p.GetTargetHash(),
		RootHash:      p.GetRootHash(),
		SiblingHashes: p.GetSiblingHashes(),
	}
}
