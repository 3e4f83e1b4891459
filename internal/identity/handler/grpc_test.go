package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "notification-control-plane/backend/api/generated/auth/v1"
	"notification-control-plane/backend/internal/identity/service"
	"notification-control-plane/backend/internal/security"
	tenantdomain "notification-control-plane/backend/internal/tenant/domain"
)

type memTenantRepo struct {
	mu      sync.Mutex
	byEmail map[string]*tenantdomain.Tenant
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

func newTestServer() *Server {
	repo := &memTenantRepo{byEmail: make(map[string]*tenantdomain.Tenant)}
	hasher := security.NewHasher(4)
	tokens := security.NewTokenProvider([]byte("test-secret"), "test-issuer", "test-audience", 15*time.Minute)
	return NewServer(service.NewAuthService(repo, hasher, tokens))
}

const validPassword = "Sup3r-Secret-Pass!"

func TestRegister_Success(t *testing.T) {
	srv := newTestServer()
	resp, err := srv.Register(context.Background(), &authv1.RegisterRequest{
		Name: "Acme", Email: "acme@example.com", Password: validPassword, Plan: "PRO",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.TenantId == "" {
		t.Error("tenant_id should be set")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := newTestServer()
	req := &authv1.RegisterRequest{Name: "Acme", Email: "acme@example.com", Password: validPassword}
	if _, err := srv.Register(context.Background(), req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := srv.Register(context.Background(), req)
	if status.Code(err) != codes.AlreadyExists {
		t.Errorf("code = %v, want AlreadyExists", status.Code(err))
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	srv := newTestServer()
	testCases := []struct {
		name string
		req  *authv1.RegisterRequest
	}{
		{"bad email", &authv1.RegisterRequest{Name: "Acme", Email: "nope", Password: validPassword}},
		{"weak password", &authv1.RegisterRequest{Name: "Acme", Email: "acme@example.com", Password: "short"}},
		{"unknown plan", &authv1.RegisterRequest{Name: "Acme", Email: "acme@example.com", Password: validPassword, Plan: "GOLD"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := srv.Register(context.Background(), tc.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("code = %v, want InvalidArgument", status.Code(err))
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	srv := newTestServer()
	if _, err := srv.Register(context.Background(), &authv1.RegisterRequest{
		Name: "Acme", Email: "acme@example.com", Password: validPassword,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := srv.Login(context.Background(), &authv1.LoginRequest{
		Email: "acme@example.com", Password: validPassword,
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("access_token should be set")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token_type = %q, want Bearer", resp.TokenType)
	}
	if resp.ExpiresIn <= 0 {
		t.Errorf("expires_in = %d, want positive", resp.ExpiresIn)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := newTestServer()
	if _, err := srv.Register(context.Background(), &authv1.RegisterRequest{
		Name: "Acme", Email: "acme@example.com", Password: validPassword,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := srv.Login(context.Background(), &authv1.LoginRequest{
		Email: "acme@example.com", Password: "Wrong-Passw0rd!!",
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestNilService_Unimplemented(t *testing.T) {
	srv := NewServer(nil)
	if _, err := srv.Register(context.Background(), &authv1.RegisterRequest{}); status.Code(err) != codes.Unimplemented {
		t.Errorf("code = %v, want Unimplemented", status.Code(err))
	}
	if _, err := srv.Login(context.Background(), &authv1.LoginRequest{}); status.Code(err) != codes.Unimplemented {
		t.Errorf("code = %v, want Unimplemented", status.Code(err))
	}
}
