package interceptors

import "context"

type contextKey struct{ name string }

var (
	tenantIDKey  = contextKey{"tenant_id"}
	planKey      = contextKey{"plan"}
	requestIDKey = contextKey{"request_id"}
)

// WithTenant returns a context with tenant_id and plan set.
// Handlers and services can read these via GetTenantID and GetPlan.
func WithTenant(ctx context.Context, tenantID, plan string) context.Context {
	ctx = context.WithValue(ctx, tenantIDKey, tenantID)
	ctx = context.WithValue(ctx, planKey, plan)
	return ctx
}

// GetTenantID returns the tenant_id from context and true if set; otherwise "", false.
func GetTenantID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tenantIDKey).(string)
	return v, ok
}

// GetPlan returns the tenant plan from context and true if set; otherwise "", false.
func GetPlan(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(planKey).(string)
	return v, ok
}

// WithRequestID returns a context with a per-request identifier set.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request_id from context and true if set; otherwise "", false.
func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(requestIDKey).(string)
	return v, ok
}
