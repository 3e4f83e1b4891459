// Package event publishes admitted notifications to Kafka for asynchronous
// delivery. Publishing is best-effort: by the time an event is emitted the
// request has already been admitted and billed against quota, so a failed
// write is logged, never surfaced as a request failure.
package event

import "time"

// NotificationEvent is the JSON payload handed to the delivery workers.
type NotificationEvent struct {
	NotificationID string    `json:"notification_id"`
	TenantID       string    `json:"tenant_id"`
	ChannelCode    string    `json:"channel_code"`
	Recipient      string    `json:"recipient"`
	Subject        string    `json:"subject,omitempty"`
	Content        string    `json:"content"`
	TemplateID     string    `json:"template_id,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
