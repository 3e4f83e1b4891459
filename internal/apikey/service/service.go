package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"notification-control-plane/backend/internal/apikey/domain"
	apikeyrepo "notification-control-plane/backend/internal/apikey/repository"
	"notification-control-plane/backend/internal/security"
)

// ErrKeyNotFound covers unknown and revoked keys alike; callers cannot
// tell the two apart. The auth interceptor surfaces it as Unauthenticated.
var ErrKeyNotFound = errors.New("api key not found")

// Service issues, lists, revokes, and authenticates tenant API keys.
// Raw keys are returned once at creation; lookups go through an HMAC digest
// index and are confirmed against the stored bcrypt hash.
type Service struct {
	repo      apikeyrepo.Repository
	hasher    *security.Hasher
	lookupKey []byte
}

// NewService returns an API key service. lookupKey is the HMAC key for
// deriving lookup digests; it must stay stable across restarts or existing
// keys become unfindable.
func NewService(repo apikeyrepo.Repository, hasher *security.Hasher, lookupKey []byte) *Service {
	return &Service{repo: repo, hasher: hasher, lookupKey: lookupKey}
}

// Create issues a new API key for the tenant and returns the stored record
// and the raw key. The raw key is not recoverable afterwards.
func (s *Service) Create(ctx context.Context, tenantID, name string) (*domain.APIKey, string, error) {
	tenantID = strings.TrimSpace(tenantID)
	name = strings.TrimSpace(name)
	raw, err := security.GenerateAPIKey()
	if err != nil {
		return nil, "", err
	}
	hash, err := s.hasher.Hash([]byte(raw))
	if err != nil {
		return nil, "", err
	}
	k := &domain.APIKey{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		KeyHash:   hash,
		LookupKey: security.APIKeyLookupDigest(s.lookupKey, raw),
		CreatedAt: time.Now().UTC(),
	}
	if err := k.Validate(); err != nil {
		return nil, "", err
	}
	if err := s.repo.Create(ctx, k); err != nil {
		return nil, "", err
	}
	return k, raw, nil
}

// Authenticate resolves a raw API key to its tenant. Returns ErrKeyNotFound
// for unknown or revoked keys; the two cases are indistinguishable to callers.
func (s *Service) Authenticate(ctx context.Context, rawKey string) (tenantID string, err error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return "", ErrKeyNotFound
	}
	digest := security.APIKeyLookupDigest(s.lookupKey, rawKey)
	k, err := s.repo.GetByLookupKey(ctx, digest)
	if err != nil {
		return "", err
	}
	if k == nil {
		return "", ErrKeyNotFound
	}
	if err := s.hasher.Compare(k.KeyHash, []byte(rawKey)); err != nil {
		return "", ErrKeyNotFound
	}
	return k.TenantID, nil
}

// List returns all keys for the tenant, including revoked ones.
func (s *Service) List(ctx context.Context, tenantID string) ([]*domain.APIKey, error) {
	return s.repo.ListByTenant(ctx, strings.TrimSpace(tenantID))
}

// Revoke marks the key revoked. Idempotent.
func (s *Service) Revoke(ctx context.Context, id string) error {
	return s.repo.Revoke(ctx, strings.TrimSpace(id))
}
