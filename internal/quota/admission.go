package quota

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"
)

// unlimitedMarker is the cached encoding of an unlimited grant. It must be
// a value Decrement can never produce: a raced decrement drives an
// exhausted entry to -1, so the ledger's -1 sentinel cannot double as the
// cache marker without turning an exhausted tenant into an unlimited one.
const unlimitedMarker int64 = math.MaxInt64

var (
	// ErrQuotaExceeded means the tenant has no remaining quota. Terminal
	// for the request; retrying before the quota resets will not help.
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrTenantUnknown means the ledger has no record of the tenant.
	ErrTenantUnknown = errors.New("tenant unknown")
	// ErrUnavailable means the ledger could not be reached or timed out.
	// Safe for the caller to retry.
	ErrUnavailable = errors.New("quota ledger unavailable")
)

// Controller decides whether a notification is admitted against the
// tenant's remaining quota. It consults the cache first and only calls
// the ledger on a miss, reserving a batch of requestUnits to amortize
// the RPC over subsequent requests.
type Controller struct {
	cache        Cache
	ledger       Ledger
	ttl          time.Duration
	requestUnits int32
}

// NewController returns an admission controller. ttl bounds cache
// staleness; requestUnits is the batch size reserved from the ledger on
// each cache miss and must be positive.
func NewController(cache Cache, ledger Ledger, ttl time.Duration, requestUnits int32) *Controller {
	return &Controller{cache: cache, ledger: ledger, ttl: ttl, requestUnits: requestUnits}
}

// CheckAndReserve consumes one unit of the tenant's quota and returns nil
// if the notification is admitted. A nil return means the unit is spent
// even if the caller's publish or persistence later fails.
//
// Cache read failures degrade to a miss so the ledger stays the deciding
// authority; a ledger failure is never treated as unlimited quota.
func (c *Controller) CheckAndReserve(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return fmt.Errorf("%w: empty tenant id", ErrTenantUnknown)
	}

	cached, found, err := c.cache.Get(ctx, tenantID)
	if err != nil {
		log.Printf("quota: cache get %s: %v", tenantID, err)
		found = false
	}
	if found {
		if cached == unlimitedMarker {
			return nil
		}
		if cached <= 0 {
			return ErrQuotaExceeded
		}
		return c.consume(ctx, tenantID)
	}

	granted, remaining, err := c.ledger.Reserve(ctx, tenantID, c.requestUnits)
	if err != nil {
		return err
	}
	if remaining == Unlimited {
		c.store(ctx, tenantID, unlimitedMarker)
		return nil
	}
	if granted <= 0 {
		// Cache the exhaustion so follow-up requests reject locally
		// until the TTL expires.
		c.store(ctx, tenantID, 0)
		return ErrQuotaExceeded
	}
	c.store(ctx, tenantID, granted)
	return c.consume(ctx, tenantID)
}

// consume takes one unit from the cached batch. A negative result means a
// concurrent request took the last unit between our read and the
// decrement, so this request is rejected.
func (c *Controller) consume(ctx context.Context, tenantID string) error {
	newValue, err := c.cache.Decrement(ctx, tenantID)
	if err != nil {
		// The admit decision already stands; losing one decrement is
		// bounded by the TTL.
		log.Printf("quota: cache decrement %s: %v", tenantID, err)
		return nil
	}
	if newValue < 0 {
		// Clamp the entry back to zero so later reads see exhaustion
		// instead of a negative counter.
		c.store(ctx, tenantID, 0)
		return ErrQuotaExceeded
	}
	return nil
}

func (c *Controller) store(ctx context.Context, tenantID string, value int64) {
	if err := c.cache.Set(ctx, tenantID, value, c.ttl); err != nil {
		log.Printf("quota: cache set %s: %v", tenantID, err)
	}
}
