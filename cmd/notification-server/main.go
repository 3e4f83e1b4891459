// notification-server hosts notification intake and channel management.
// Admission checks go against the Redis quota cache first, falling back to
// the tenant server's quota ledger over gRPC on a miss. Admitted
// notifications are persisted PENDING and published to Kafka for delivery.
// Set DATABASE_URL, REDIS_ADDR, KAFKA_BROKERS, TENANT_SERVICE_ADDR,
// JWT_SECRET, and API_KEY_LOOKUP_KEY.
package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	tenantv1 "notification-control-plane/backend/api/generated/tenant/v1"

	apikeyrepo "notification-control-plane/backend/internal/apikey/repository"
	apikeyservice "notification-control-plane/backend/internal/apikey/service"
	channelrepo "notification-control-plane/backend/internal/channel/repository"
	"notification-control-plane/backend/internal/config"
	"notification-control-plane/backend/internal/db"
	"notification-control-plane/backend/internal/event"
	notificationrepo "notification-control-plane/backend/internal/notification/repository"
	notificationservice "notification-control-plane/backend/internal/notification/service"
	"notification-control-plane/backend/internal/quota"
	"notification-control-plane/backend/internal/security"
	"notification-control-plane/backend/internal/server"
	"notification-control-plane/backend/internal/server/interceptors"
	"notification-control-plane/backend/internal/telemetry/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("notification-server: JWT_SECRET is required")
	}
	if cfg.RedisAddr == "" {
		log.Fatal("notification-server: REDIS_ADDR is required")
	}

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "ncp-notification-server", false)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = providers.Shutdown(shutdownCtx)
	}()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	cache := quota.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer cache.Close()
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := cache.Ping(pingCtx); err != nil {
		log.Fatalf("redis: %v", err)
	}
	pingCancel()

	ledgerConn, err := grpc.NewClient(cfg.TenantServiceAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		log.Fatalf("tenant service dial: %v", err)
	}
	defer ledgerConn.Close()
	ledger := quota.NewGRPCLedger(tenantv1.NewTenantServiceClient(ledgerConn), cfg.ReserveTimeout())
	admitter := quota.NewController(cache, ledger, cfg.CacheTTL(), int32(cfg.QuotaRequestUnits))

	producer, err := event.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.NotificationKafkaTopic)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}
	if producer != nil {
		defer producer.Close()
	} else {
		log.Println("notification-server: KAFKA_BROKERS unset, events will not be published")
	}

	channels := channelrepo.NewPostgresRepository(conn)
	notifications := notificationrepo.NewPostgresRepository(conn)
	var eventProducer event.Producer
	if producer != nil {
		eventProducer = producer
	}
	intake := notificationservice.NewIntakeService(admitter, notifications, channels, eventProducer)

	tokens := security.NewTokenProvider([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	hasher := security.NewHasher(cfg.BcryptCost)
	keySvc := apikeyservice.NewService(apikeyrepo.NewPostgresRepository(conn), hasher, []byte(cfg.APIKeyLookupKey))

	history, err := event.NewKafkaHistoryProducer(cfg.KafkaBrokersList(), cfg.HistoryKafkaTopic)
	if err != nil {
		log.Fatalf("history producer: %v", err)
	}
	var historyProducer event.HistoryProducer
	if history != nil {
		historyProducer = history
		defer history.Close()
	} else {
		historyProducer = otel.NewHistoryEmitter(providers.LoggerProvider)
	}

	publicMethods := map[string]bool{
		"/grpc.health.v1.Health/Check": true,
		"/grpc.health.v1.Health/Watch": true,
	}
	skipHistory := map[string]bool{
		"/grpc.health.v1.Health/Check": true,
		"/grpc.health.v1.Health/Watch": true,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.RequestIDUnary(),
			interceptors.AuthUnary(tokens, keySvc, publicMethods),
			interceptors.HistoryUnary(historyProducer, skipHistory),
		),
	)
	server.RegisterNotificationServices(s, server.NotificationDeps{
		Intake:      intake,
		ChannelRepo: channels,
	})

	go func() {
		log.Printf("notification-server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down notification-server...")
	s.GracefulStop()
	log.Println("notification-server stopped")
}
