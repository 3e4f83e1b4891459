package repository

import (
	"context"

	"notification-control-plane/backend/internal/notification/domain"
)

// Repository defines persistence for notifications.
type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.Notification, error)
	// UpdateStatus moves the notification to status. Used by the delivery worker.
	UpdateStatus(ctx context.Context, id, status string) error
}
