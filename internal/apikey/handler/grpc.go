package handler

import (
	"context"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apikeyv1 "notification-control-plane/backend/api/generated/apikey/v1"
	"notification-control-plane/backend/internal/apikey/domain"
	"notification-control-plane/backend/internal/apikey/service"
)

// Server implements APIKeyService (proto server) for API key management.
// Proto: apikey/v1/apikey.proto → internal/apikey/handler.
type Server struct {
	apikeyv1.UnimplementedAPIKeyServiceServer
	svc *service.Service
}

// NewServer returns a new APIKey gRPC server. svc may be nil; then all RPCs return Unimplemented.
func NewServer(svc *service.Service) *Server {
	return &Server{svc: svc}
}

// CreateAPIKey issues a new key. The raw key appears only in this response.
func (s *Server) CreateAPIKey(ctx context.Context, req *apikeyv1.CreateAPIKeyRequest) (*apikeyv1.CreateAPIKeyResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateAPIKey not implemented")
	}
	tenantID := strings.TrimSpace(req.GetTenantId())
	if tenantID == "" {
		return nil, status.Error(codes.InvalidArgument, "tenant_id required")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name required")
	}
	k, raw, err := s.svc.Create(ctx, tenantID, name)
	if err != nil {
		log.Printf("apikey: create for tenant %s: %v", tenantID, err)
		return nil, status.Error(codes.Internal, "failed to create api key")
	}
	return &apikeyv1.CreateAPIKeyResponse{Id: k.ID, RawKey: raw}, nil
}

// ListAPIKeys returns all keys for a tenant. Raw keys are never included.
func (s *Server) ListAPIKeys(ctx context.Context, req *apikeyv1.ListAPIKeysRequest) (*apikeyv1.ListAPIKeysResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ListAPIKeys not implemented")
	}
	tenantID := strings.TrimSpace(req.GetTenantId())
	if tenantID == "" {
		return nil, status.Error(codes.InvalidArgument, "tenant_id required")
	}
	keys, err := s.svc.List(ctx, tenantID)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list api keys")
	}
	out := make([]*apikeyv1.APIKey, 0, len(keys))
	for _, k := range keys {
		out = append(out, domainKeyToProto(k))
	}
	return &apikeyv1.ListAPIKeysResponse{Keys: out}, nil
}

// RevokeAPIKey marks a key revoked. Idempotent.
func (s *Server) RevokeAPIKey(ctx context.Context, req *apikeyv1.RevokeAPIKeyRequest) (*apikeyv1.RevokeAPIKeyResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method RevokeAPIKey not implemented")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := s.svc.Revoke(ctx, id); err != nil {
		return nil, status.Error(codes.Internal, "failed to revoke api key")
	}
	return &apikeyv1.RevokeAPIKeyResponse{}, nil
}

func domainKeyToProto(k *domain.APIKey) *apikeyv1.APIKey {
	if k == nil {
		return nil
	}
	return &apikeyv1.APIKey{
		Id:            k.ID,
		TenantId:      k.TenantID,
		Name:          k.Name,
		Revoked:       k.Revoked,
		CreatedAtUnix: k.CreatedAt.Unix(),
	}
}
