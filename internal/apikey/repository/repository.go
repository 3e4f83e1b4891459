package repository

import (
	"context"

	"notification-control-plane/backend/internal/apikey/domain"
)

// Repository defines persistence for API keys.
type Repository interface {
	Create(ctx context.Context, k *domain.APIKey) error
	// GetByLookupKey returns the non-revoked key with the given lookup
	// digest, or nil if not found. The digest is an index; callers still
	// verify the bcrypt hash before trusting the match.
	GetByLookupKey(ctx context.Context, lookupKey string) (*domain.APIKey, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.APIKey, error)
	Revoke(ctx context.Context, id string) error
}
