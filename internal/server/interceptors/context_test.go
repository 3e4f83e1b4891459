package interceptors

import (
	"context"
	"testing"
)

func TestWithTenant_SetsAllValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithTenant(ctx, "tenant-1", "PRO")

	tenantID, ok := GetTenantID(ctx)
	if !ok {
		t.Fatal("GetTenantID should return true")
	}
	if tenantID != "tenant-1" {
		t.Errorf("tenant_id = %q, want %q", tenantID, "tenant-1")
	}

	plan, ok := GetPlan(ctx)
	if !ok {
		t.Fatal("GetPlan should return true")
	}
	if plan != "PRO" {
		t.Errorf("plan = %q, want %q", plan, "PRO")
	}
}

func TestGetTenantID_ReturnsFalseWhenNotSet(t *testing.T) {
	tenantID, ok := GetTenantID(context.Background())
	if ok {
		t.Error("GetTenantID should return false when not set")
	}
	if tenantID != "" {
		t.Errorf("tenant_id = %q, want empty string", tenantID)
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	requestID, ok := GetRequestID(ctx)
	if !ok {
		t.Fatal("GetRequestID should return true")
	}
	if requestID != "req-1" {
		t.Errorf("request_id = %q, want %q", requestID, "req-1")
	}
}

func TestGetRequestID_ReturnsFalseWhenNotSet(t *testing.T) {
	if _, ok := GetRequestID(context.Background()); ok {
		t.Error("GetRequestID should return false when not set")
	}
}

func TestContext_Isolation(t *testing.T) {
	ctx1 := WithTenant(context.Background(), "tenant-1", "FREE")
	ctx2 := WithTenant(context.Background(), "tenant-2", "PRO")

	tenantID1, _ := GetTenantID(ctx1)
	if tenantID1 != "tenant-1" {
		t.Errorf("ctx1 tenant_id = %q, want %q", tenantID1, "tenant-1")
	}
	tenantID2, _ := GetTenantID(ctx2)
	if tenantID2 != "tenant-2" {
		t.Errorf("ctx2 tenant_id = %q, want %q", tenantID2, "tenant-2")
	}
}

func TestWithTenant_Chaining(t *testing.T) {
	ctx := context.Background()
	ctx = WithTenant(ctx, "tenant-1", "FREE")
	ctx = WithTenant(ctx, "tenant-2", "PRO")

	// Last call should override
	tenantID, _ := GetTenantID(ctx)
	if tenantID != "tenant-2" {
		t.Errorf("tenant_id = %q, want %q", tenantID, "tenant-2")
	}
	plan, _ := GetPlan(ctx)
	if plan != "PRO" {
		t.Errorf("plan = %q, want %q", plan, "PRO")
	}
}
