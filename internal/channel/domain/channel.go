package domain

import (
	"errors"
	"time"
)

// Channel is a delivery channel (e.g. EMAIL, SMS) notifications are routed
// through. Code is the stable external identifier.
type Channel struct {
	ID          string
	Code        string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Validate validates the channel for persistence. Returns an error describing the first validation failure.
func (c *Channel) Validate() error {
	if c.Code == "" {
		return errors.New("code is required")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
