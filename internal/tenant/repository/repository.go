package repository

import (
	"context"

	"notification-control-plane/backend/internal/tenant/domain"
)

// Repository defines persistence for tenants and the quota ledger.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)
	Create(ctx context.Context, t *domain.Tenant) error
	// Reserve atomically grants up to requested units from the tenant's
	// remaining quota and decrements the ledger. Unlimited tenants are
	// granted the full request without mutation. Returns the granted units
	// and the remaining quota after the grant. A nil tenant result from the
	// underlying row means granted 0 and domain.ErrTenantNotFound.
	Reserve(ctx context.Context, tenantID string, requested int64) (granted, remaining int64, err error)
}
