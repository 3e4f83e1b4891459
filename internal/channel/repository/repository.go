package repository

import (
	"context"

	"notification-control-plane/backend/internal/channel/domain"
)

// Repository defines persistence for channels.
type Repository interface {
	Create(ctx context.Context, c *domain.Channel) error
	GetByCode(ctx context.Context, code string) (*domain.Channel, error)
	List(ctx context.Context) ([]*domain.Channel, error)
}
