package domain

import (
	"errors"
	"time"
)

// UnlimitedQuota is the sentinel remaining-quota value for tenants with no
// monthly cap. It is never decremented.
const UnlimitedQuota int64 = -1

// ErrTenantNotFound is returned by ledger operations that need to distinguish
// a missing tenant from an exhausted one.
var ErrTenantNotFound = errors.New("tenant not found")

// Tenant is the core tenant entity. QuotaRemaining is the authoritative
// ledger value; UnlimitedQuota means no cap.
type Tenant struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Plan           Plan
	QuotaLimit     int64
	QuotaRemaining int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanPro        Plan = "PRO"
	PlanEnterprise Plan = "ENTERPRISE"
)

// QuotaForPlan returns the monthly quota a plan starts with.
// Enterprise tenants are unlimited.
func QuotaForPlan(p Plan) int64 {
	switch p {
	case PlanPro:
		return 10000
	case PlanEnterprise:
		return UnlimitedQuota
	default:
		return 100
	}
}

// ParsePlan normalizes a plan string. Empty defaults to FREE; unknown values
// are rejected.
func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case "":
		return PlanFree, nil
	case PlanFree, PlanPro, PlanEnterprise:
		return Plan(s), nil
	default:
		return "", errors.New("unknown plan: " + s)
	}
}

// Validate validates the tenant for persistence. Returns an error describing the first validation failure.
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}
	if t.Email == "" {
		return errors.New("email is required")
	}
	if t.Plan == "" {
		t.Plan = PlanFree
	}
	return nil
}

// Unlimited reports whether the tenant has no quota cap.
func (t *Tenant) Unlimited() bool {
	return t.QuotaRemaining == UnlimitedQuota
}
