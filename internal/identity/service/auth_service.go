package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"notification-control-plane/backend/internal/security"
	tenantdomain "notification-control-plane/backend/internal/tenant/domain"
)

// Sentinel errors for auth service; handler maps them to gRPC codes.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

// AuthResult holds the outcome of Register (tenant_id only) or Login (token).
type AuthResult struct {
	TenantID    string
	AccessToken string
	ExpiresAt   time.Time
}

// TenantRepo is the minimal tenant repository needed by the auth service.
type TenantRepo interface {
	GetByEmail(ctx context.Context, email string) (*tenantdomain.Tenant, error)
	Create(ctx context.Context, t *tenantdomain.Tenant) error
}

// AuthService implements password-based tenant registration and login.
type AuthService struct {
	tenantRepo TenantRepo
	hasher     *security.Hasher
	tokens     *security.TokenProvider
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(tenantRepo TenantRepo, hasher *security.Hasher, tokens *security.TokenProvider) *AuthService {
	return &AuthService{
		tenantRepo: tenantRepo,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Register creates a tenant with the given name, email, password, and plan.
// The plan seeds the quota ledger; empty plan defaults to FREE. Returns
// AuthResult with TenantID only. Caller must Login to get a token.
func (s *AuthService) Register(ctx context.Context, name, email, password, plan string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	p, err := tenantdomain.ParsePlan(strings.ToUpper(strings.TrimSpace(plan)))
	if err != nil {
		return nil, err
	}
	existing, err := s.tenantRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}
	hashed, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, err
	}
	quota := tenantdomain.QuotaForPlan(p)
	now := time.Now().UTC()
	tenant := &tenantdomain.Tenant{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(name),
		Email:          email,
		PasswordHash:   hashed,
		Plan:           p,
		QuotaLimit:     quota,
		QuotaRemaining: quota,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := tenant.Validate(); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return &AuthResult{TenantID: tenant.ID}, nil
}

// Login authenticates with email/password and returns a tenant access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	tenant, err := s.tenantRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if tenant == nil || tenant.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(tenant.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	accessToken, _, expiresAt, err := s.tokens.IssueAccess(tenant.ID, string(tenant.Plan))
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		TenantID:    tenant.ID,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	const simpleEmail = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	ok, _ := regexp.MatchString(simpleEmail, email)
	if !ok {
		return errors.New("invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 12 {
		return errors.New("password must be at least 12 characters")
	}
	var hasUpper, hasLower, hasNumber, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasNumber = true
		case r < '0' || (r > '9' && r < 'A') || (r > 'Z' && r < 'a') || r > 'z':
			hasSymbol = true
		}
	}
	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return errors.New("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return errors.New("password must contain at least one number")
	}
	if !hasSymbol {
		return errors.New("password must contain at least one symbol")
	}
	return nil
}
