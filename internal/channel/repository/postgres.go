package repository

import (
	"context"
	"database/sql"
	"errors"

	"notification-control-plane/backend/internal/channel/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a channel repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const channelColumns = "id, code, name, description, created_at"

// Create persists the channel. The channel must have ID set; it is not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, c *domain.Channel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO channels (id, code, name, description, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Code, c.Name, c.Description, c.CreatedAt)
	return err
}

// GetByCode returns the channel for code, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*domain.Channel, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+channelColumns+" FROM channels WHERE code = $1", code)
	var c domain.Channel
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// List returns all channels ordered by code.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Channel, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+channelColumns+" FROM channels ORDER BY code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []*domain.Channel
	for rows.Next() {
		var c domain.Channel
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		channels = append(channels, &c)
	}
	return channels, rows.Err()
}
