package checkin

import (
	"context"
	"errors"
	"testing"

	v1 "github.com/ChuLiYu/machine-coordinator/api/proto/v1"
	"github.com/ChuLiYu/machine-coordinator/internal/registry"
	"github.com/ChuLiYu/machine-coordinator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeRegistry struct {
	err       error
	sessionID types.SessionID
	address   string
}

func (f *fakeRegistry) CommunicateAddress(id types.SessionID, address string) error {
	f.sessionID = id
	f.address = address
	return f.err
}

func TestCommunicateAddress_Success(t *testing.T) {
	reg := &fakeRegistry{}
	svc := New(reg)

	resp, err := svc.CommunicateAddress(context.Background(), &v1.CommunicateAddressRequest{
		SessionId: "s1",
		Address:   "worker-1:9000",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, types.SessionID("s1"), reg.sessionID)
	assert.Equal(t, "worker-1:9000", reg.address)
}

func TestCommunicateAddress_UnknownSessionMapsToInvalidArgument(t *testing.T) {
	reg := &fakeRegistry{err: &registry.SessionIDError{SessionID: "ghost", Reason: "no such session"}}
	svc := New(reg)

	_, err := svc.CommunicateAddress(context.Background(), &v1.CommunicateAddressRequest{SessionId: "ghost"})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestCommunicateAddress_OtherErrorMapsToUnknown(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("boom")}
	svc := New(reg)

	_, err := svc.CommunicateAddress(context.Background(), &v1.CommunicateAddressRequest{SessionId: "s1"})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unknown, st.Code())
}
