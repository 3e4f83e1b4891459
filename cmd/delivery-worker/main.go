// delivery-worker consumes admitted notifications from Kafka and performs
// delivery, marking each record SENT or FAILED. Delivery itself is stubbed
// to a log line per channel; the consume/ack/status flow is the real part.
// Set KAFKA_BROKERS, NOTIFICATION_KAFKA_TOPIC, KAFKA_GROUP_ID, and
// DATABASE_URL. GRPC_ADDR is required by config but unused (e.g. set to :0).
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"notification-control-plane/backend/internal/config"
	"notification-control-plane/backend/internal/db"
	"notification-control-plane/backend/internal/event"
	"notification-control-plane/backend/internal/notification/domain"
	notificationrepo "notification-control-plane/backend/internal/notification/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal("delivery-worker: KAFKA_BROKERS is required")
	}

	topic := cfg.NotificationKafkaTopic
	if topic == "" {
		topic = "notification-requests"
	}
	groupID := cfg.KafkaGroupID
	if groupID == "" {
		groupID = "notification-delivery-worker"
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()
	notifications := notificationrepo.NewPostgresRepository(conn)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		CommitInterval: time.Second,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("delivery-worker: shutting down...")
		cancel()
	}()

	log.Printf("delivery-worker: consuming from %s (group %s)", topic, groupID)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("delivery-worker: stopped")
				return
			}
			log.Printf("delivery-worker: kafka read error: %v", err)
			continue
		}

		var e event.NotificationEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			log.Printf("delivery-worker: malformed event at offset %d: %v", msg.Offset, err)
			continue
		}

		deliverCtx, deliverCancel := context.WithTimeout(ctx, 10*time.Second)
		status := domain.StatusSent
		if err := deliver(deliverCtx, &e); err != nil {
			log.Printf("delivery-worker: deliver %s: %v", e.NotificationID, err)
			status = domain.StatusFailed
		}
		if err := notifications.UpdateStatus(deliverCtx, e.NotificationID, status); err != nil {
			log.Printf("delivery-worker: update status %s: %v", e.NotificationID, err)
		}
		deliverCancel()
	}
}

// deliver hands the notification to the channel's provider.
// TODO: wire real providers (SMTP, SMS gateway) behind a per-channel interface.
func deliver(ctx context.Context, e *event.NotificationEvent) error {
	log.Printf("delivery-worker: [%s] to %s (tenant %s, notification %s)",
		e.ChannelCode, e.Recipient, e.TenantID, e.NotificationID)
	return nil
}
