package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"notification-control-plane/backend/internal/security"
)

const bearerPrefix = "bearer "

// APIKeyAuthenticator resolves a raw API key to its tenant. Implemented by
// the apikey service.
type APIKeyAuthenticator interface {
	Authenticate(ctx context.Context, rawKey string) (tenantID string, err error)
}

// AuthUnary returns a unary server interceptor that authenticates each RPC
// and sets tenant_id (and plan, for JWT callers) in context.
//
// Two credentials are accepted: an x-api-key metadata entry resolved through
// keys, or a Bearer access token validated by tokens. An API key wins when
// both are present. publicMethods is the set of full method names that do
// not require credentials (e.g. AuthService Register, Login).
func AuthUnary(tokens *security.TokenProvider, keys APIKeyAuthenticator, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		public := publicMethods[info.FullMethod]

		if rawKey := metadataValue(ctx, "x-api-key"); rawKey != "" && keys != nil {
			tenantID, err := keys.Authenticate(ctx, rawKey)
			if err == nil {
				return handler(WithTenant(ctx, tenantID, ""), req)
			}
			if !public {
				return nil, status.Error(codes.Unauthenticated, "missing or invalid credentials")
			}
			return handler(ctx, req)
		}

		token := extractBearer(ctx)
		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid credentials")
		}

		tenantID, plan, err := tokens.ValidateAccess(token)
		if err != nil {
			if public {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing or invalid credentials")
		}

		return handler(WithTenant(ctx, tenantID, plan), req)
	}
}

// metadataValue returns the first value for key from incoming metadata, or "".
func metadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(key)
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	v := metadataValue(ctx, "authorization")
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
