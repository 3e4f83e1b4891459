// Package quota implements cache-aside quota admission for notification
// intake. The authoritative counter lives in the tenant service's ledger;
// this package keeps a TTL-bounded Redis copy and only calls the ledger
// on cache miss.
package quota

import (
	"context"
	"time"
)

// Unlimited is the sentinel remaining-quota value for tenants without a cap.
const Unlimited int64 = -1

// Cache is a shared, TTL-based per-tenant counter. Get reports found=false
// on a missing or expired entry. Decrement is atomic with respect to other
// decrements but not with respect to Set, so a repopulation can overwrite
// a concurrent decrement. That staleness is bounded by the entry TTL.
type Cache interface {
	Get(ctx context.Context, tenantID string) (value int64, found bool, err error)
	Set(ctx context.Context, tenantID string, value int64, ttl time.Duration) error
	Decrement(ctx context.Context, tenantID string) (newValue int64, err error)
}
