package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"notification-control-plane/backend/internal/notification/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a notification repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const notificationColumns = "id, tenant_id, channel_code, recipient, subject, content, template_id, status, created_at, updated_at"

// Create persists the notification. The notification must have ID and Status set.
func (r *PostgresRepository) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, tenant_id, channel_code, recipient, subject, content, template_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		n.ID, n.TenantID, n.ChannelCode, n.Recipient, n.Subject, n.Content, n.TemplateID, n.Status, n.CreatedAt, n.UpdatedAt)
	return err
}

// GetByID returns the notification for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+notificationColumns+" FROM notifications WHERE id = $1", id)
	return scanNotification(row)
}

// ListByTenant returns the tenant's notifications, newest first, capped at limit.
func (r *PostgresRepository) ListByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.Notification, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2",
		tenantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.TenantID, &n.ChannelCode, &n.Recipient, &n.Subject, &n.Content, &n.TemplateID, &n.Status, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// UpdateStatus moves the notification to status and bumps updated_at.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET status = $2, updated_at = $3 WHERE id = $1",
		id, status, time.Now().UTC())
	return err
}

func scanNotification(row *sql.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.TenantID, &n.ChannelCode, &n.Recipient, &n.Subject, &n.Content, &n.TemplateID, &n.Status, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}
