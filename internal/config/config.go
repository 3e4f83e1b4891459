// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN; empty until DB is wired.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// RedisAddr is the Redis address for the quota cache (e.g. localhost:6379).
	// Required by the notification server; the tenant server and worker ignore it.
	RedisAddr string `mapstructure:"REDIS_ADDR"`
	// RedisPassword is the Redis AUTH password; empty for no auth.
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	// RedisDB is the Redis logical database index.
	RedisDB int `mapstructure:"REDIS_DB"`

	// KafkaBrokers is a comma-separated list of Kafka broker addresses (e.g. "localhost:9092").
	// Empty disables event publishing; admitted notifications stay PENDING.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// NotificationKafkaTopic is the topic admitted notification events are published to.
	NotificationKafkaTopic string `mapstructure:"NOTIFICATION_KAFKA_TOPIC"`
	// HistoryKafkaTopic is the topic per-RPC request history events are published to.
	HistoryKafkaTopic string `mapstructure:"HISTORY_KAFKA_TOPIC"`
	// KafkaGroupID is the consumer group ID for the delivery worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`

	// TenantServiceAddr is the address of the tenant service (authoritative quota ledger).
	// Required by the notification server; the tenant server ignores it.
	TenantServiceAddr string `mapstructure:"TENANT_SERVICE_ADDR"`
	// QuotaCacheTTL is the lifetime of a cached quota grant (e.g. "60s").
	QuotaCacheTTL string `mapstructure:"QUOTA_CACHE_TTL"`
	// QuotaRequestUnits is the number of units reserved from the ledger per cache miss.
	QuotaRequestUnits int `mapstructure:"QUOTA_REQUEST_UNITS"`
	// QuotaRPCTimeout bounds each ReserveQuota call to the ledger (e.g. "3s").
	QuotaRPCTimeout string `mapstructure:"QUOTA_RPC_TIMEOUT"`

	// JWTSecret is the HS256 signing secret for tenant access tokens.
	JWTSecret string `mapstructure:"JWT_SECRET"`
	// JWTIssuer is the iss claim (e.g. "ncp-auth").
	JWTIssuer string `mapstructure:"JWT_ISSUER"`
	// JWTAudience is the aud claim (e.g. "ncp-api").
	JWTAudience string `mapstructure:"JWT_AUDIENCE"`
	// JWTAccessTTL is the access token lifetime (e.g. "15m").
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`
	// BcryptCost is the bcrypt cost factor (4-31); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// APIKeyLookupKey is the HMAC key used to derive API key lookup digests.
	APIKeyLookupKey string `mapstructure:"API_KEY_LOOKUP_KEY"`

	// OTLPEndpoint is the OTLP gRPC collector endpoint (e.g. localhost:4317).
	// Empty disables telemetry export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("NOTIFICATION_KAFKA_TOPIC", "notification-requests")
	v.SetDefault("HISTORY_KAFKA_TOPIC", "request-history")
	v.SetDefault("KAFKA_GROUP_ID", "notification-delivery-worker")
	v.SetDefault("TENANT_SERVICE_ADDR", "localhost:8081")
	v.SetDefault("QUOTA_CACHE_TTL", "60s")
	v.SetDefault("QUOTA_REQUEST_UNITS", 10)
	v.SetDefault("QUOTA_RPC_TIMEOUT", "3s")
	v.SetDefault("JWT_ISSUER", "ncp-auth")
	v.SetDefault("JWT_AUDIENCE", "ncp-api")
	v.SetDefault("JWT_ACCESS_TTL", "15m")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("API_KEY_LOOKUP_KEY", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("APP_ENV", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GRPCAddr == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	if cfg.QuotaRequestUnits <= 0 {
		return nil, errors.New("config: QUOTA_REQUEST_UNITS must be positive")
	}

	return &cfg, nil
}

// AccessTTL parses JWTAccessTTL as a time.Duration. Returns 15m if unset or invalid.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTAccessTTL)
	if err != nil || d <= 0 {
		return 15 * time.Minute
	}
	return d
}

// CacheTTL parses QuotaCacheTTL as a time.Duration. Returns 60s if unset or invalid.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.QuotaCacheTTL)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// ReserveTimeout parses QuotaRPCTimeout as a time.Duration. Returns 3s if unset or invalid.
func (c *Config) ReserveTimeout() time.Duration {
	d, err := time.ParseDuration(c.QuotaRPCTimeout)
	if err != nil || d <= 0 {
		return 3 * time.Second
	}
	return d
}

// KafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// Used to decide if event publishing is enabled (non-empty list) and to create producers.
func (c *Config) KafkaBrokersList() []string {
	if c == nil || c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
