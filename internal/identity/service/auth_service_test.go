package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"notification-control-plane/backend/internal/security"
	tenantdomain "notification-control-plane/backend/internal/tenant/domain"
)

type memTenantRepo struct {
	mu      sync.Mutex
	byEmail map[string]*tenantdomain.Tenant
}

func newMemTenantRepo() *memTenantRepo {
	return &memTenantRepo{byEmail: make(map[string]*tenantdomain.Tenant)}
}

func (r *memTenantRepo) GetByEmail(ctx context.Context, email string) (*tenantdomain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byEmail[email], nil
}

func (r *memTenantRepo) Create(ctx context.Context, t *tenantdomain.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t2 := *t
	r.byEmail[t.Email] = &t2
	return nil
}

func newAuthService(repo TenantRepo) *AuthService {
	hasher := security.NewHasher(4) // min cost for fast tests
	tokens := security.NewTokenProvider([]byte("test-secret"), "test-issuer", "test-audience", 15*time.Minute)
	return NewAuthService(repo, hasher, tokens)
}

const validPassword = "Sup3r-Secret-Pass!"

func TestRegister_Success(t *testing.T) {
	repo := newMemTenantRepo()
	svc := newAuthService(repo)

	res, err := svc.Register(context.Background(), "Acme", "acme@example.com", validPassword, "PRO")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.TenantID == "" {
		t.Fatal("TenantID should be set")
	}
	stored := repo.byEmail["acme@example.com"]
	if stored == nil {
		t.Fatal("tenant not persisted")
	}
	if stored.Plan != tenantdomain.PlanPro {
		t.Errorf("plan = %q, want PRO", stored.Plan)
	}
	if stored.QuotaRemaining != 10000 {
		t.Errorf("quota remaining = %d, want 10000", stored.QuotaRemaining)
	}
	if stored.PasswordHash == validPassword || stored.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
}

func TestRegister_PlanQuotas(t *testing.T) {
	testCases := []struct {
		plan string
		want int64
	}{
		{"", 100},
		{"FREE", 100},
		{"PRO", 10000},
		{"ENTERPRISE", tenantdomain.UnlimitedQuota},
		{"enterprise", tenantdomain.UnlimitedQuota}, // case-insensitive
	}
	for _, tc := range testCases {
		repo := newMemTenantRepo()
		svc := newAuthService(repo)
		_, err := svc.Register(context.Background(), "Acme", "acme@example.com", validPassword, tc.plan)
		if err != nil {
			t.Fatalf("Register(plan=%q): %v", tc.plan, err)
		}
		if got := repo.byEmail["acme@example.com"].QuotaRemaining; got != tc.want {
			t.Errorf("plan %q: quota = %d, want %d", tc.plan, got, tc.want)
		}
	}
}

func TestRegister_UnknownPlan(t *testing.T) {
	svc := newAuthService(newMemTenantRepo())
	if _, err := svc.Register(context.Background(), "Acme", "acme@example.com", validPassword, "GOLD"); err == nil {
		t.Error("Register with unknown plan should fail")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemTenantRepo()
	svc := newAuthService(repo)
	if _, err := svc.Register(context.Background(), "Acme", "acme@example.com", validPassword, ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(context.Background(), "Other", "acme@example.com", validPassword, "")
	if err != ErrEmailAlreadyRegistered {
		t.Errorf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := newAuthService(newMemTenantRepo())
	for _, email := range []string{"", "not-an-email", "@example.com", "user@"} {
		if _, err := svc.Register(context.Background(), "Acme", email, validPassword, ""); err == nil {
			t.Errorf("Register with email %q should fail", email)
		}
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newAuthService(newMemTenantRepo())
	for _, pw := range []string{"", "short", "nouppercase1!aaaa", "NOLOWERCASE1!AAAA", "NoNumberHere!!aa", "NoSymbolHere11aa"} {
		if _, err := svc.Register(context.Background(), "Acme", "acme@example.com", pw, ""); err == nil {
			t.Errorf("Register with password %q should fail", pw)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMemTenantRepo()
	svc := newAuthService(repo)
	reg, err := svc.Register(context.Background(), "Acme", "acme@example.com", validPassword, "PRO")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	res, err := svc.Login(context.Background(), "Acme@Example.com", validPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.AccessToken == "" {
		t.Error("AccessToken should be set")
	}
	if res.TenantID != reg.TenantID {
		t.Errorf("TenantID = %q, want %q", res.TenantID, reg.TenantID)
	}
	if time.Until(res.ExpiresAt) <= 0 {
		t.Error("ExpiresAt should be in the future")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(newMemTenantRepo())
	if _, err := svc.Register(context.Background(), "Acme", "acme@example.com", validPassword, ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(context.Background(), "acme@example.com", "Wrong-Passw0rd!!"); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(newMemTenantRepo())
	if _, err := svc.Login(context.Background(), "nobody@example.com", validPassword); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_EmptyInputs(t *testing.T) {
	svc := newAuthService(newMemTenantRepo())
	if _, err := svc.Login(context.Background(), "", ""); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
