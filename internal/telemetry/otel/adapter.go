package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"notification-control-plane/backend/internal/event"
)

// NewHistoryEmitter returns an event.HistoryProducer that records request
// history as OTel log records via the given LoggerProvider. Used when no
// Kafka history topic is configured. If provider is nil, returns a no-op.
func NewHistoryEmitter(provider *sdklog.LoggerProvider) event.HistoryProducer {
	if provider == nil {
		return noopEmitter{}
	}
	return &historyEmitter{logger: provider.Logger("ncp.request_history")}
}

// RecordLogger is the slice of otellog.Logger the emitter needs. Satisfied
// by loggers from a LoggerProvider and by test captures.
type RecordLogger interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// NewHistoryEmitterWithLogger is like NewHistoryEmitter but takes the
// logger directly. Useful for tests that capture emitted records.
func NewHistoryEmitterWithLogger(logger RecordLogger) event.HistoryProducer {
	return &historyEmitter{logger: logger}
}

type noopEmitter struct{}

func (noopEmitter) EmitRequest(context.Context, *event.RequestHistoryEvent) error { return nil }

func (noopEmitter) Close() error { return nil }

type historyEmitter struct {
	logger RecordLogger
}

// EmitRequest converts the history event to an OTel log record and emits it. Best-effort.
func (e *historyEmitter) EmitRequest(ctx context.Context, entry *event.RequestHistoryEvent) error {
	if entry == nil {
		return nil
	}
	rec := otellog.Record{}
	if !entry.CreatedAt.IsZero() {
		rec.SetTimestamp(entry.CreatedAt)
	} else {
		rec.SetTimestamp(time.Now().UTC())
	}
	rec.SetBody(otellog.StringValue(entry.FullMethod))
	if entry.RequestID != "" {
		rec.AddAttributes(otellog.String("request_id", entry.RequestID))
	}
	if entry.TenantID != "" {
		rec.AddAttributes(otellog.String("tenant_id", entry.TenantID))
	}
	if entry.StatusCode != "" {
		rec.AddAttributes(otellog.String("status_code", entry.StatusCode))
	}
	if entry.ClientIP != "" {
		rec.AddAttributes(otellog.String("client_ip", entry.ClientIP))
	}
	rec.AddAttributes(otellog.Int64("duration_ms", entry.DurationMs))
	e.logger.Emit(ctx, rec)
	return nil
}

func (e *historyEmitter) Close() error { return nil }
