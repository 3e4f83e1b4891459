package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"notification-control-plane/backend/internal/tenant/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a tenant repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const tenantColumns = "id, name, email, password_hash, plan, quota_limit, quota_remaining, created_at, updated_at"

// GetByID returns the tenant for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+tenantColumns+" FROM tenants WHERE id = $1", id)
	return scanTenant(row)
}

// GetByEmail returns the tenant with the given email, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+tenantColumns+" FROM tenants WHERE email = $1", email)
	return scanTenant(row)
}

// Create persists the tenant to the database. The tenant must have ID set; it is not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, t *domain.Tenant) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tenants (id, name, email, password_hash, plan, quota_limit, quota_remaining, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Name, t.Email, t.PasswordHash, string(t.Plan), t.QuotaLimit, t.QuotaRemaining, t.CreatedAt, t.UpdatedAt)
	return err
}

// Reserve grants up to requested units inside a transaction. The tenant row
// is locked for the duration so concurrent reservations never over-grant.
func (r *PostgresRepository) Reserve(ctx context.Context, tenantID string, requested int64) (granted, remaining int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		"SELECT quota_remaining FROM tenants WHERE id = $1 FOR UPDATE", tenantID)
	if err := row.Scan(&remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrTenantNotFound
		}
		return 0, 0, err
	}

	if remaining == domain.UnlimitedQuota {
		// Unlimited tenants never decrement the ledger.
		if err := tx.Commit(); err != nil {
			return 0, 0, err
		}
		return requested, domain.UnlimitedQuota, nil
	}

	granted = requested
	if remaining < granted {
		granted = remaining
	}
	if granted < 0 {
		granted = 0
	}
	if granted > 0 {
		remaining -= granted
		_, err = tx.ExecContext(ctx,
			"UPDATE tenants SET quota_remaining = $1, updated_at = $2 WHERE id = $3",
			remaining, time.Now().UTC(), tenantID)
		if err != nil {
			return 0, 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return granted, remaining, nil
}

func scanTenant(row *sql.Row) (*domain.Tenant, error) {
	var t domain.Tenant
	var plan string
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.PasswordHash, &plan, &t.QuotaLimit, &t.QuotaRemaining, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.Plan = domain.Plan(plan)
	return &t, nil
}
