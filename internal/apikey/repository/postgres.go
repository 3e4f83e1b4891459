package repository

import (
	"context"
	"database/sql"
	"errors"

	"notification-control-plane/backend/internal/apikey/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an API key repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const apiKeyColumns = "id, tenant_id, name, key_hash, lookup_key, revoked, created_at"

// Create persists the API key. The key must have ID set; it is not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, k *domain.APIKey) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO api_keys (id, tenant_id, name, key_hash, lookup_key, revoked, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		k.ID, k.TenantID, k.Name, k.KeyHash, k.LookupKey, k.Revoked, k.CreatedAt)
	return err
}

// GetByLookupKey returns the non-revoked key for the lookup digest, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByLookupKey(ctx context.Context, lookupKey string) (*domain.APIKey, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+apiKeyColumns+" FROM api_keys WHERE lookup_key = $1 AND revoked = FALSE", lookupKey)
	var k domain.APIKey
	err := row.Scan(&k.ID, &k.TenantID, &k.Name, &k.KeyHash, &k.LookupKey, &k.Revoked, &k.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &k, nil
}

// ListByTenant returns all keys for the tenant, newest first.
func (r *PostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.APIKey, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+apiKeyColumns+" FROM api_keys WHERE tenant_id = $1 ORDER BY created_at DESC", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []*domain.APIKey
	for rows.Next() {
		var k domain.APIKey
		if err := rows.Scan(&k.ID, &k.TenantID, &k.Name, &k.KeyHash, &k.LookupKey, &k.Revoked, &k.CreatedAt); err != nil {
			return nil, err
		}
		keys = append(keys, &k)
	}
	return keys, rows.Err()
}

// Revoke marks the key revoked. Revoking an already revoked or missing key is a no-op.
func (r *PostgresRepository) Revoke(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE api_keys SET revoked = TRUE WHERE id = $1", id)
	return err
}
