package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tenantv1 "notification-control-plane/backend/api/generated/tenant/v1"
)

// fakeTenantClient implements tenantv1.TenantServiceClient for tests.
type fakeTenantClient struct {
	resp    *tenantv1.ReserveQuotaResponse
	err     error
	lastReq *tenantv1.ReserveQuotaRequest
}

func (f *fakeTenantClient) ReserveQuota(ctx context.Context, req *tenantv1.ReserveQuotaRequest, opts ...grpc.CallOption) (*tenantv1.ReserveQuotaResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeTenantClient) GetTenant(ctx context.Context, req *tenantv1.GetTenantRequest, opts ...grpc.CallOption) (*tenantv1.GetTenantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "not used")
}

func TestGRPCLedger_Reserve(t *testing.T) {
	client := &fakeTenantClient{
		resp: &tenantv1.ReserveQuotaResponse{GrantedUnits: 10, RemainingUnits: 90},
	}
	ledger := NewGRPCLedger(client, time.Second)

	granted, remaining, err := ledger.Reserve(context.Background(), "t1", 10)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if granted != 10 || remaining != 90 {
		t.Errorf("granted, remaining = %d, %d, want 10, 90", granted, remaining)
	}
	if client.lastReq.GetTenantId() != "t1" || client.lastReq.GetRequestedUnits() != 10 {
		t.Errorf("request = %v, want tenant t1 with 10 units", client.lastReq)
	}
}

func TestGRPCLedger_UnlimitedTenant(t *testing.T) {
	client := &fakeTenantClient{
		resp: &tenantv1.ReserveQuotaResponse{GrantedUnits: 10, RemainingUnits: -1},
	}
	ledger := NewGRPCLedger(client, time.Second)

	_, remaining, err := ledger.Reserve(context.Background(), "t1", 10)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if remaining != Unlimited {
		t.Errorf("remaining = %d, want the unlimited sentinel", remaining)
	}
}

func TestGRPCLedger_NotFoundMapsToTenantUnknown(t *testing.T) {
	client := &fakeTenantClient{err: status.Error(codes.NotFound, "tenant not found")}
	ledger := NewGRPCLedger(client, time.Second)

	_, _, err := ledger.Reserve(context.Background(), "ghost", 10)
	if !errors.Is(err, ErrTenantUnknown) {
		t.Fatalf("err = %v, want ErrTenantUnknown", err)
	}
}

func TestGRPCLedger_TransportFailureMapsToUnavailable(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"unavailable", status.Error(codes.Unavailable, "connection refused")},
		{"deadline", status.Error(codes.DeadlineExceeded, "context deadline exceeded")},
		{"internal", status.Error(codes.Internal, "boom")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewGRPCLedger(&fakeTenantClient{err: tc.err}, time.Second)
			_, _, err := ledger.Reserve(context.Background(), "t1", 10)
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("err = %v, want ErrUnavailable", err)
			}
		})
	}
}
