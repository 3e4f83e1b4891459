package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "notification-control-plane/backend/api/generated/notification/v1"
	channeldomain "notification-control-plane/backend/internal/channel/domain"
	"notification-control-plane/backend/internal/event"
	"notification-control-plane/backend/internal/notification/domain"
	"notification-control-plane/backend/internal/notification/service"
	"notification-control-plane/backend/internal/quota"
	"notification-control-plane/backend/internal/server/interceptors"
)

// mockAdmitter implements service.Admitter for tests.
type mockAdmitter struct {
	err error
}

func (m *mockAdmitter) CheckAndReserve(ctx context.Context, tenantID string) error {
	return m.err
}

// mockNotificationRepo implements the notification repository for tests.
type mockNotificationRepo struct {
	created []*domain.Notification
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	n2 := *n
	m.created = append(m.created, &n2)
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepo) ListByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

// mockChannelRepo implements the channel repository for tests.
type mockChannelRepo struct {
	codes map[string]bool
}

func (m *mockChannelRepo) Create(ctx context.Context, c *channeldomain.Channel) error { return nil }

func (m *mockChannelRepo) GetByCode(ctx context.Context, code string) (*channeldomain.Channel, error) {
	if m.codes[code] {
		return &channeldomain.Channel{ID: "ch-1", Code: code}, nil
	}
	return nil, nil
}

func (m *mockChannelRepo) List(ctx context.Context) ([]*channeldomain.Channel, error) {
	return nil, nil
}

// mockProducer implements event.Producer for tests.
type mockProducer struct {
	events []*event.NotificationEvent
}

func (m *mockProducer) Emit(ctx context.Context, e *event.NotificationEvent) error {
	m.events = append(m.events, e)
	return nil
}

func (m *mockProducer) Close() error { return nil }

func newTestServer(admitErr error) (*Server, *mockNotificationRepo) {
	repo := &mockNotificationRepo{}
	intake := service.NewIntakeService(
		&mockAdmitter{err: admitErr},
		repo,
		&mockChannelRepo{codes: map[string]bool{"EMAIL": true}},
		&mockProducer{},
	)
	return NewServer(intake), repo
}

func validRequest() *notificationv1.SendNotificationRequest {
	return &notificationv1.SendNotificationRequest{
		TenantId:    "tenant-1",
		ChannelCode: "EMAIL",
		Recipient:   "user@example.com",
		Content:     "Hello there",
	}
}

func TestSendNotification_Success(t *testing.T) {
	srv, repo := newTestServer(nil)

	resp, err := srv.SendNotification(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SendNotification: %v", err)
	}
	if resp.NotificationId == "" {
		t.Error("notification_id should be assigned")
	}
	if resp.TenantId != "tenant-1" {
		t.Errorf("tenant_id = %q, want tenant-1", resp.TenantId)
	}
	if resp.Status != domain.StatusPending {
		t.Errorf("status = %q, want PENDING", resp.Status)
	}
	if len(repo.created) != 1 {
		t.Errorf("persisted = %d records, want 1", len(repo.created))
	}
}

func TestSendNotification_AuthenticatedTenantWins(t *testing.T) {
	srv, repo := newTestServer(nil)

	ctx := interceptors.WithTenant(context.Background(), "tenant-auth", "PRO")
	req := validRequest()
	req.TenantId = "tenant-spoofed"

	resp, err := srv.SendNotification(ctx, req)
	if err != nil {
		t.Fatalf("SendNotification: %v", err)
	}
	if resp.TenantId != "tenant-auth" {
		t.Errorf("tenant_id = %q, want the authenticated tenant", resp.TenantId)
	}
	if repo.created[0].TenantID != "tenant-auth" {
		t.Errorf("persisted tenant = %q, want the authenticated tenant", repo.created[0].TenantID)
	}
}

func TestSendNotification_QuotaExceeded(t *testing.T) {
	srv, _ := newTestServer(quota.ErrQuotaExceeded)
	_, err := srv.SendNotification(context.Background(), validRequest())
	if status.Code(err) != codes.ResourceExhausted {
		t.Errorf("code = %v, want ResourceExhausted", status.Code(err))
	}
}

func TestSendNotification_TenantUnknown(t *testing.T) {
	srv, _ := newTestServer(quota.ErrTenantUnknown)
	_, err := srv.SendNotification(context.Background(), validRequest())
	if status.Code(err) != codes.NotFound {
		t.Errorf("code = %v, want NotFound", status.Code(err))
	}
}

func TestSendNotification_LedgerUnavailable(t *testing.T) {
	srv, _ := newTestServer(quota.ErrUnavailable)
	_, err := srv.SendNotification(context.Background(), validRequest())
	if status.Code(err) != codes.Unavailable {
		t.Errorf("code = %v, want Unavailable", status.Code(err))
	}
}

func TestSendNotification_Validation(t *testing.T) {
	srv, _ := newTestServer(nil)
	testCases := []struct {
		name   string
		mutate func(*notificationv1.SendNotificationRequest)
	}{
		{"missing tenant", func(r *notificationv1.SendNotificationRequest) { r.TenantId = "" }},
		{"missing recipient", func(r *notificationv1.SendNotificationRequest) { r.Recipient = "" }},
		{"missing content", func(r *notificationv1.SendNotificationRequest) { r.Content = "" }},
		{"unknown channel", func(r *notificationv1.SendNotificationRequest) { r.ChannelCode = "FAX" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := srv.SendNotification(context.Background(), req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("code = %v, want InvalidArgument", status.Code(err))
			}
		})
	}
}

func TestSendNotification_NilIntake(t *testing.T) {
	srv := NewServer(nil)
	_, err := srv.SendNotification(context.Background(), validRequest())
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("code = %v, want Unimplemented", status.Code(err))
	}
}
