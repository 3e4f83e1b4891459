package domain

import (
	"errors"
	"time"
)

// APIKey is a stored tenant API key. The raw key is never persisted; KeyHash
// is a bcrypt hash and LookupKey an HMAC digest used as the index.
type APIKey struct {
	ID        string
	TenantID  string
	Name      string
	KeyHash   string
	LookupKey string
	Revoked   bool
	CreatedAt time.Time
}

// Validate validates the API key for persistence. Returns an error describing the first validation failure.
func (k *APIKey) Validate() error {
	if k.TenantID == "" {
		return errors.New("tenant_id is required")
	}
	if k.Name == "" {
		return errors.New("name is required")
	}
	if k.KeyHash == "" {
		return errors.New("key_hash is required")
	}
	if k.LookupKey == "" {
		return errors.New("lookup_key is required")
	}
	return nil
}
