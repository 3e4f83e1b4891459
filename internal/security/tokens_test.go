package security

import (
	"testing"
	"time"
)

func newTestProvider() *TokenProvider {
	return NewTokenProvider([]byte("test-secret"), "test-issuer", "test-audience", 15*time.Minute)
}

func TestIssueAccess_RoundTrip(t *testing.T) {
	p := newTestProvider()

	token, jti, expiresAt, err := p.IssueAccess("tenant-123", "PRO")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}
	if jti == "" {
		t.Error("jti should not be empty")
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("expiresAt should be in the future")
	}

	tenantID, plan, err := p.ValidateAccess(token)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if tenantID != "tenant-123" {
		t.Errorf("tenantID = %q, want %q", tenantID, "tenant-123")
	}
	if plan != "PRO" {
		t.Errorf("plan = %q, want %q", plan, "PRO")
	}
}

func TestValidateAccess_Malformed(t *testing.T) {
	p := newTestProvider()
	if _, _, err := p.ValidateAccess("not-a-jwt"); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateAccess_WrongSecret(t *testing.T) {
	p := newTestProvider()
	token, _, _, err := p.IssueAccess("tenant-123", "FREE")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	other := NewTokenProvider([]byte("different-secret"), "test-issuer", "test-audience", 15*time.Minute)
	if _, _, err := other.ValidateAccess(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateAccess_WrongIssuer(t *testing.T) {
	p := newTestProvider()
	token, _, _, err := p.IssueAccess("tenant-123", "FREE")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	other := NewTokenProvider([]byte("test-secret"), "other-issuer", "test-audience", 15*time.Minute)
	if _, _, err := other.ValidateAccess(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateAccess_WrongAudience(t *testing.T) {
	p := newTestProvider()
	token, _, _, err := p.IssueAccess("tenant-123", "FREE")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	other := NewTokenProvider([]byte("test-secret"), "test-issuer", "other-audience", 15*time.Minute)
	if _, _, err := other.ValidateAccess(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateAccess_Expired(t *testing.T) {
	p := NewTokenProvider([]byte("test-secret"), "test-issuer", "test-audience", -1*time.Minute)
	token, _, _, err := p.IssueAccess("tenant-123", "FREE")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, _, err := p.ValidateAccess(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken for expired token", err)
	}
}

func TestIssueAccess_UniqueJTI(t *testing.T) {
	p := newTestProvider()
	_, jti1, _, err := p.IssueAccess("tenant-123", "FREE")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	_, jti2, _, err := p.IssueAccess("tenant-123", "FREE")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if jti1 == jti2 {
		t.Error("jti should be unique per issued token")
	}
}
