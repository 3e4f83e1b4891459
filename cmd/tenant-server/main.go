// tenant-server hosts the authoritative side of the control plane: tenant
// registration and login, the quota ledger (ReserveQuota), and API key
// management. Set DATABASE_URL, JWT_SECRET, and API_KEY_LOOKUP_KEY.
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

	authv1 "notification-control-plane/backend/api/generated/auth/v1"
	tenantv1 "notification-control-plane/backend/api/generated/tenant/v1"

	apikeyrepo "notification-control-plane/backend/internal/apikey/repository"
	apikeyservice "notification-control-plane/backend/internal/apikey/service"
	"notification-control-plane/backend/internal/config"
	"notification-control-plane/backend/internal/db"
	"notification-control-plane/backend/internal/event"
	identityservice "notification-control-plane/backend/internal/identity/service"
	"notification-control-plane/backend/internal/security"
	"notification-control-plane/backend/internal/server"
	"notification-control-plane/backend/internal/server/interceptors"
	tenantrepo "notification-control-plane/backend/internal/tenant/repository"
	"notification-control-plane/backend/internal/telemetry/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("tenant-server: JWT_SECRET is required")
	}

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "ncp-tenant-server", false)
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

	tokens := security.NewTokenProvider([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	hasher := security.NewHasher(cfg.BcryptCost)

	tenants := tenantrepo.NewPostgresRepository(conn)
	authSvc := identityservice.NewAuthService(tenants, hasher, tokens)
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

	// TenantService is unauthenticated at this layer. Its callers are
	// other services inside the deployment; keep it off any public
	// network.
	publicMethods := map[string]bool{
		authv1.AuthService_Register_FullMethodName:         true,
		authv1.AuthService_Login_FullMethodName:            true,
		tenantv1.TenantService_ReserveQuota_FullMethodName: true,
		tenantv1.TenantService_GetTenant_FullMethodName:    true,
		"/grpc.health.v1.Health/Check":                     true,
		"/grpc.health.v1.Health/Watch":                     true,
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
	server.RegisterTenantServices(s, server.TenantDeps{
		Auth:       authSvc,
		TenantRepo: tenants,
		APIKeys:    keySvc,
	})
	go func() {
		log.Printf("tenant-server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down tenant-server...")
	s.GracefulStop()
	log.Println("tenant-server stopped")
}
