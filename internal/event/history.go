package event

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// RequestHistoryEvent records one handled RPC for the request-history topic.
type RequestHistoryEvent struct {
	RequestID  string    `json:"request_id"`
	TenantID   string    `json:"tenant_id,omitempty"`
	FullMethod string    `json:"full_method"`
	StatusCode string    `json:"status_code"`
	DurationMs int64     `json:"duration_ms"`
	ClientIP   string    `json:"client_ip"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryProducer emits request-history events. Best-effort, like Producer.
type HistoryProducer interface {
	EmitRequest(ctx context.Context, event *RequestHistoryEvent) error
	Close() error
}

// KafkaHistoryProducer implements HistoryProducer on its own Kafka topic.
type KafkaHistoryProducer struct {
	writer *kafka.Writer
}

// NewKafkaHistoryProducer creates a producer for the request-history topic.
// Returns nil (disabled) when brokers or topic are unset.
func NewKafkaHistoryProducer(brokers []string, topic string) (*KafkaHistoryProducer, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaHistoryProducer{writer: writer}, nil
}

// EmitRequest serializes the event as JSON and writes it to the topic.
func (p *KafkaHistoryProducer) EmitRequest(ctx context.Context, event *RequestHistoryEvent) error {
	if p == nil || p.writer == nil || event == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = p.writer.WriteMessages(writeCtx, kafka.Message{Value: payload})
	if err != nil {
		log.Printf("event: kafka history emit failed: %v", err)
		return err
	}
	return nil
}

// Close closes the Kafka writer. Safe to call multiple times.
func (p *KafkaHistoryProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
