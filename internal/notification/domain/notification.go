package domain

import (
	"errors"
	"time"
)

// Notification delivery statuses. Intake persists PENDING; the delivery
// worker owns the transition to SENT or FAILED.
const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

// Notification is an admitted notification request awaiting delivery.
type Notification struct {
	ID          string
	TenantID    string
	ChannelCode string
	Recipient   string
	Subject     string
	Content     string
	TemplateID  string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the notification for intake. Returns an error describing the first validation failure.
func (n *Notification) Validate() error {
	if n.TenantID == "" {
		return errors.New("tenant id is required")
	}
	if n.ChannelCode == "" {
		return errors.New("channel code is required")
	}
	if n.Recipient == "" {
		return errors.New("recipient is required")
	}
	if n.Content == "" && n.TemplateID == "" {
		return errors.New("content or template id is required")
	}
	return nil
}
