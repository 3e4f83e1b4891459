package quota

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tenantv1 "notification-control-plane/backend/api/generated/tenant/v1"
)

// Ledger is the authoritative quota counter, reached over RPC. Reserve
// atomically grants up to units from the tenant's remaining quota and
// returns the grant together with the remaining balance after it.
// remaining is Unlimited for uncapped tenants.
type Ledger interface {
	Reserve(ctx context.Context, tenantID string, units int32) (granted, remaining int64, err error)
}

// GRPCLedger implements Ledger against the tenant service's ReserveQuota RPC.
type GRPCLedger struct {
	client  tenantv1.TenantServiceClient
	timeout time.Duration
}

// NewGRPCLedger wraps a tenant service client. timeout bounds each Reserve
// call; zero means 3 seconds.
func NewGRPCLedger(client tenantv1.TenantServiceClient, timeout time.Duration) *GRPCLedger {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &GRPCLedger{client: client, timeout: timeout}
}

// Reserve calls the tenant service. An unknown tenant maps to
// ErrTenantUnknown; any transport or server failure maps to ErrUnavailable
// so callers reject rather than silently admit.
func (l *GRPCLedger) Reserve(ctx context.Context, tenantID string, units int32) (int64, int64, error) {
	callCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.client.ReserveQuota(callCtx, &tenantv1.ReserveQuotaRequest{
		TenantId:       tenantID,
		RequestedUnits: units,
	})
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			return 0, 0, ErrTenantUnknown
		case codes.InvalidArgument:
			return 0, 0, fmt.Errorf("reserve quota: %w", err)
		default:
			return 0, 0, fmt.Errorf("%w: reserve quota: %v", ErrUnavailable, err)
		}
	}
	return int64(resp.GetGrantedUnits()), int64(resp.GetRemainingUnits()), nil
}
