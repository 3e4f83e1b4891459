package interceptors

import (
	"context"
	"log"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"notification-control-plane/backend/internal/event"
)

// RequestIDUnary returns a unary server interceptor that assigns each RPC a
// request id, honoring an x-request-id metadata entry from the caller.
func RequestIDUnary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := metadataValue(ctx, "x-request-id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		return handler(WithRequestID(ctx, requestID), req)
	}
}

// HistoryUnary returns a unary server interceptor that emits a request-history
// event after each RPC. Best-effort: failures are logged and do not fail the
// RPC. If p is nil, the interceptor no-ops. skipMethods is the set of full
// method names to not record (e.g. HealthCheck).
func HistoryUnary(p event.HistoryProducer, skipMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if p == nil || skipMethods[info.FullMethod] {
			return resp, err
		}
		requestID, _ := GetRequestID(ctx)
		tenantID, _ := GetTenantID(ctx)
		entry := &event.RequestHistoryEvent{
			RequestID:  requestID,
			TenantID:   tenantID,
			FullMethod: info.FullMethod,
			StatusCode: status.Code(err).String(),
			DurationMs: time.Since(start).Milliseconds(),
			ClientIP:   ClientIP(ctx),
			CreatedAt:  time.Now().UTC(),
		}
		go func() {
			emitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if emitErr := p.EmitRequest(emitCtx, entry); emitErr != nil {
				log.Printf("history: interceptor emit failed: %v", emitErr)
			}
		}()
		return resp, err
	}
}

// ClientIP returns the client IP from gRPC metadata (x-forwarded-for, x-real-ip) or peer, or "unknown".
func ClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-forwarded-for"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				if i := strings.Index(s, ","); i > 0 {
					s = strings.TrimSpace(s[:i])
				}
				return s
			}
		}
		if vals := md.Get("x-real-ip"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				return s
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			return host
		}
		return p.Addr.String()
	}
	return "unknown"
}
