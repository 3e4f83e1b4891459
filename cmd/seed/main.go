// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev tenant (dev@example.com) already exists.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	apikeyrepo "notification-control-plane/backend/internal/apikey/repository"
	apikeyservice "notification-control-plane/backend/internal/apikey/service"
	channeldomain "notification-control-plane/backend/internal/channel/domain"
	channelrepo "notification-control-plane/backend/internal/channel/repository"
	"notification-control-plane/backend/internal/config"
	"notification-control-plane/backend/internal/db"
	"notification-control-plane/backend/internal/security"
	tenantdomain "notification-control-plane/backend/internal/tenant/domain"
	tenantrepo "notification-control-plane/backend/internal/tenant/repository"
)

const (
	devTenantEmail = "dev@example.com"
	devPassword    = "Dev-Password-123!"
)

var devChannels = []struct {
	code, name, description string
}{
	{"EMAIL", "Email", "SMTP delivery"},
	{"SMS", "SMS", "Text message delivery"},
	{"PUSH", "Push", "Mobile push delivery"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	channels := channelrepo.NewPostgresRepository(conn)
	for _, c := range devChannels {
		existing, err := channels.GetByCode(ctx, c.code)
		if err != nil {
			log.Fatalf("seed: look up channel %s: %v", c.code, err)
		}
		if existing != nil {
			continue
		}
		if err := channels.Create(ctx, &channeldomain.Channel{
			ID:          uuid.New().String(),
			Code:        c.code,
			Name:        c.name,
			Description: c.description,
			CreatedAt:   time.Now().UTC(),
		}); err != nil {
			log.Fatalf("seed: create channel %s: %v", c.code, err)
		}
		log.Printf("seed: created channel %s", c.code)
	}

	tenants := tenantrepo.NewPostgresRepository(conn)
	existing, err := tenants.GetByEmail(ctx, devTenantEmail)
	if err != nil {
		log.Fatalf("seed: look up tenant: %v", err)
	}
	if existing != nil {
		log.Println("seed: dev tenant already exists, nothing to do")
		return
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash([]byte(devPassword))
	if err != nil {
		log.Fatalf("seed: hash password: %v", err)
	}

	now := time.Now().UTC()
	tenant := &tenantdomain.Tenant{
		ID:             uuid.New().String(),
		Name:           "Dev Tenant",
		Email:          devTenantEmail,
		PasswordHash:   hash,
		Plan:           tenantdomain.PlanFree,
		QuotaLimit:     tenantdomain.QuotaForPlan(tenantdomain.PlanFree),
		QuotaRemaining: tenantdomain.QuotaForPlan(tenantdomain.PlanFree),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := tenants.Create(ctx, tenant); err != nil {
		log.Fatalf("seed: create tenant: %v", err)
	}
	log.Printf("seed: created tenant %s (%s / %s)", tenant.ID, devTenantEmail, devPassword)

	if cfg.APIKeyLookupKey == "" {
		log.Println("seed: API_KEY_LOOKUP_KEY unset, skipping dev API key")
		return
	}
	keys := apikeyservice.NewService(apikeyrepo.NewPostgresRepository(conn), hasher, []byte(cfg.APIKeyLookupKey))
	_, raw, err := keys.Create(ctx, tenant.ID, "dev")
	if err != nil {
		log.Fatalf("seed: create api key: %v", err)
	}
	log.Printf("seed: created dev API key %s (shown once, save it)", raw)
}
