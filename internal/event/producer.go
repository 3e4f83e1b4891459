package event

import "context"

// Producer emits notification events. Callers use it best-effort: log and
// ignore errors.
type Producer interface {
	// Emit sends a single event. Implementations may block briefly.
	// Returns an error only on write failure; callers typically log and ignore.
	Emit(ctx context.Context, event *NotificationEvent) error
	// Close releases resources (e.g. Kafka writer). Safe to call if already closed.
	Close() error
}
