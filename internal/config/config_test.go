package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q, want %q", cfg.GRPCAddr, ":8080")
	}
	if cfg.JWTIssuer != "ncp-auth" {
		t.Errorf("JWTIssuer = %q, want %q", cfg.JWTIssuer, "ncp-auth")
	}
	if cfg.JWTAudience != "ncp-api" {
		t.Errorf("JWTAudience = %q, want %q", cfg.JWTAudience, "ncp-api")
	}
	if cfg.JWTAccessTTL != "15m" {
		t.Errorf("JWTAccessTTL = %q, want %q", cfg.JWTAccessTTL, "15m")
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.NotificationKafkaTopic != "notification-requests" {
		t.Errorf("NotificationKafkaTopic = %q, want default", cfg.NotificationKafkaTopic)
	}
	if cfg.HistoryKafkaTopic != "request-history" {
		t.Errorf("HistoryKafkaTopic = %q, want default", cfg.HistoryKafkaTopic)
	}
	if cfg.QuotaCacheTTL != "60s" {
		t.Errorf("QuotaCacheTTL = %q, want %q", cfg.QuotaCacheTTL, "60s")
	}
	if cfg.QuotaRequestUnits != 10 {
		t.Errorf("QuotaRequestUnits = %d, want 10", cfg.QuotaRequestUnits)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":9090")
	os.Setenv("JWT_ISSUER", "custom-issuer")
	os.Setenv("BCRYPT_COST", "14")
	os.Setenv("QUOTA_REQUEST_UNITS", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GRPCAddr != ":9090" {
		t.Errorf("GRPCAddr = %q, want %q", cfg.GRPCAddr, ":9090")
	}
	if cfg.JWTIssuer != "custom-issuer" {
		t.Errorf("JWTIssuer = %q, want %q", cfg.JWTIssuer, "custom-issuer")
	}
	if cfg.BcryptCost != 14 {
		t.Errorf("BcryptCost = %d, want 14", cfg.BcryptCost)
	}
	if cfg.QuotaRequestUnits != 25 {
		t.Errorf("QuotaRequestUnits = %d, want 25", cfg.QuotaRequestUnits)
	}
}

func TestLoad_BCRYPT_COSTRange(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  int
		err   bool
	}{
		{"valid min", "4", 4, false},
		{"valid max", "31", 31, false},
		{"valid middle", "12", 12, false},
		{"too low", "3", 0, true},
		{"too high", "32", 0, true},
		{"zero", "0", 12, false}, // Should default to 12
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv("GRPC_ADDR", ":8080")
			os.Setenv("BCRYPT_COST", tc.value)

			cfg, err := Load()
			if tc.err {
				if err == nil {
					t.Fatal("Load should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.BcryptCost != tc.want {
				t.Errorf("BcryptCost = %d, want %d", cfg.BcryptCost, tc.want)
			}
		})
	}
}

func TestLoad_QuotaRequestUnitsMustBePositive(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":8080")
	os.Setenv("QUOTA_REQUEST_UNITS", "-5")

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load should return error for negative QUOTA_REQUEST_UNITS")
	}
	if cfg != nil {
		t.Error("Load should return nil config on error")
	}
}

func TestAccessTTL_ValidDuration(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":8080")
	os.Setenv("JWT_ACCESS_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ttl := cfg.AccessTTL()
	if ttl != 30*time.Minute {
		t.Errorf("AccessTTL = %v, want %v", ttl, 30*time.Minute)
	}
}

func TestAccessTTL_InvalidDuration(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":8080")
	os.Setenv("JWT_ACCESS_TTL", "invalid")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ttl := cfg.AccessTTL()
	if ttl != 15*time.Minute {
		t.Errorf("AccessTTL = %v, want %v (default)", ttl, 15*time.Minute)
	}
}

func TestCacheTTL_ValidDuration(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":8080")
	os.Setenv("QUOTA_CACHE_TTL", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.CacheTTL(); got != 2*time.Minute {
		t.Errorf("CacheTTL = %v, want %v", got, 2*time.Minute)
	}
}

func TestCacheTTL_InvalidDuration(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":8080")
	os.Setenv("QUOTA_CACHE_TTL", "nonsense")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.CacheTTL(); got != 60*time.Second {
		t.Errorf("CacheTTL = %v, want %v (default)", got, 60*time.Second)
	}
}

func TestReserveTimeout_NegativeDuration(t *testing.T) {
	os.Clearenv()
	os.Setenv("GRPC_ADDR", ":8080")
	os.Setenv("QUOTA_RPC_TIMEOUT", "-1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.ReserveTimeout(); got != 3*time.Second {
		t.Errorf("ReserveTimeout = %v, want %v (default)", got, 3*time.Second)
	}
}

func TestKafkaBrokersList(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"single", "localhost:9092", 1},
		{"multiple", "b1:9092,b2:9092,b3:9092", 3},
		{"spaces and blanks", " b1:9092 , , b2:9092 ", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{KafkaBrokers: tc.value}
			got := cfg.KafkaBrokersList()
			if len(got) != tc.want {
				t.Errorf("KafkaBrokersList() = %v, want %d entries", got, tc.want)
			}
		})
	}
}

func TestKafkaBrokersList_NilConfig(t *testing.T) {
	var cfg *Config
	if got := cfg.KafkaBrokersList(); got != nil {
		t.Errorf("KafkaBrokersList on nil config = %v, want nil", got)
	}
}
