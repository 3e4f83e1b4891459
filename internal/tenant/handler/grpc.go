package handler

import (
	"context"
	"errors"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tenantv1 "notification-control-plane/backend/api/generated/tenant/v1"
	"notification-control-plane/backend/internal/tenant/domain"
	tenantrepo "notification-control-plane/backend/internal/tenant/repository"
)

// Server implements TenantService (proto server): the authoritative quota ledger.
// Proto: tenant/v1/tenant.proto → internal/tenant/handler.
type Server struct {
	tenantv1.UnimplementedTenantServiceServer
	tenantRepo tenantrepo.Repository
}

// NewServer returns a new Tenant gRPC server. tenantRepo may be nil; then all RPCs return Unimplemented.
func NewServer(tenantRepo tenantrepo.Repository) *Server {
	return &Server{tenantRepo: tenantRepo}
}

// ReserveQuota grants up to requested_units of the tenant's remaining quota.
// The decrement happens atomically inside the repository; concurrent calls
// never over-grant. An exhausted tenant receives granted_units 0 with a
// successful status; callers decide how to treat the empty grant.
func (s *Server) ReserveQuota(ctx context.Context, req *tenantv1.ReserveQuotaRequest) (*tenantv1.ReserveQuotaResponse, error) {
	if s.tenantRepo == nil {
		return nil, status.Error(codes.Unimplemented, "method ReserveQuota not implemented")
	}
	tenantID := strings.TrimSpace(req.GetTenantId())
	if tenantID == "" {
		return nil, status.Error(codes.InvalidArgument, "tenant_id required")
	}
	requested := int64(req.GetRequestedUnits())
	if requested <= 0 {
		return nil, status.Error(codes.InvalidArgument, "requested_units must be positive")
	}

	granted, remaining, err := s.tenantRepo.Reserve(ctx, tenantID, requested)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return nil, status.Error(codes.NotFound, "tenant not found")
		}
		log.Printf("tenant: reserve quota for %s: %v", tenantID, err)
		return nil, status.Error(codes.Internal, "failed to reserve quota")
	}
	return &tenantv1.ReserveQuotaResponse{
		GrantedUnits:   int32(granted),
		RemainingUnits: int32(remaining),
	}, nil
}

// GetTenant returns the tenant profile including its current quota state.
func (s *Server) GetTenant(ctx context.Context, req *tenantv1.GetTenantRequest) (*tenantv1.GetTenantResponse, error) {
	if s.tenantRepo == nil {
		return nil, status.Error(codes.Unimplemented, "method GetTenant not implemented")
	}
	tenantID := strings.TrimSpace(req.GetTenantId())
	if tenantID == "" {
		return nil, status.Error(codes.InvalidArgument, "tenant_id required")
	}
	t, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to look up tenant")
	}
	if t == nil {
		return nil, status.Error(codes.NotFound, "tenant not found")
	}
	return &tenantv1.GetTenantResponse{
		Tenant: domainTenantToProto(t),
	}, nil
}

func domainTenantToProto(t *domain.Tenant) *tenantv1.Tenant {
	if t == nil {
		return nil
	}
	return &tenantv1.Tenant{
		Id:             t.ID,
		Name:           t.Name,
		Email:          t.Email,
		Plan:           string(t.Plan),
		QuotaRemaining: int32(t.QuotaRemaining),
	}
}
