package service

import (
	"context"
	"errors"
	"testing"

	channeldomain "notification-control-plane/backend/internal/channel/domain"
	"notification-control-plane/backend/internal/event"
	"notification-control-plane/backend/internal/notification/domain"
	"notification-control-plane/backend/internal/quota"
)

// mockAdmitter implements Admitter for tests.
type mockAdmitter struct {
	err   error
	calls int
}

func (m *mockAdmitter) CheckAndReserve(ctx context.Context, tenantID string) error {
	m.calls++
	return m.err
}

// mockNotificationRepo implements repository.Repository for tests.
type mockNotificationRepo struct {
	created   []*domain.Notification
	createErr error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	n2 := *n
	m.created = append(m.created, &n2)
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	for _, n := range m.created {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (m *mockNotificationRepo) ListByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.Notification, error) {
	return m.created, nil
}

func (m *mockNotificationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

// mockChannelRepo implements channelrepo.Repository for tests.
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
	events  []*event.NotificationEvent
	emitErr error
}

func (m *mockProducer) Emit(ctx context.Context, e *event.NotificationEvent) error {
	if m.emitErr != nil {
		return m.emitErr
	}
	m.events = append(m.events, e)
	return nil
}

func (m *mockProducer) Close() error { return nil }

func newTestIntake() (*IntakeService, *mockAdmitter, *mockNotificationRepo, *mockProducer) {
	admitter := &mockAdmitter{}
	repo := &mockNotificationRepo{}
	channels := &mockChannelRepo{codes: map[string]bool{"EMAIL": true, "SMS": true}}
	producer := &mockProducer{}
	return NewIntakeService(admitter, repo, channels, producer), admitter, repo, producer
}

func validRequest() *domain.Notification {
	return &domain.Notification{
		TenantID:    "tenant-1",
		ChannelCode: "email",
		Recipient:   "user@example.com",
		Subject:     "Welcome",
		Content:     "Hello there",
	}
}

func TestSend_Success(t *testing.T) {
	svc, admitter, repo, producer := newTestIntake()

	n, err := svc.Send(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if n.ID == "" {
		t.Error("id should be assigned")
	}
	if n.Status != domain.StatusPending {
		t.Errorf("status = %q, want PENDING", n.Status)
	}
	if n.ChannelCode != "EMAIL" {
		t.Errorf("channel code = %q, want normalized EMAIL", n.ChannelCode)
	}
	if admitter.calls != 1 {
		t.Errorf("admitter calls = %d, want 1", admitter.calls)
	}
	if len(repo.created) != 1 {
		t.Fatalf("persisted = %d records, want 1", len(repo.created))
	}
	if len(producer.events) != 1 {
		t.Fatalf("published = %d events, want 1", len(producer.events))
	}
	e := producer.events[0]
	if e.NotificationID != n.ID || e.TenantID != "tenant-1" || e.Recipient != "user@example.com" || e.Status != domain.StatusPending {
		t.Errorf("event = %+v, fields must mirror the record", e)
	}
}

func TestSend_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, _, repo, producer := newTestIntake()
	producer.emitErr = errors.New("kafka down")

	n, err := svc.Send(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Send: %v, publish failures must be non-fatal", err)
	}
	if n.Status != domain.StatusPending {
		t.Errorf("status = %q, want PENDING", n.Status)
	}
	if len(repo.created) != 1 {
		t.Errorf("persisted = %d records, want 1", len(repo.created))
	}
}

func TestSend_QuotaExceeded(t *testing.T) {
	svc, admitter, repo, producer := newTestIntake()
	admitter.err = quota.ErrQuotaExceeded

	_, err := svc.Send(context.Background(), validRequest())
	if !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
	if len(repo.created) != 0 {
		t.Error("rejected request must not be persisted")
	}
	if len(producer.events) != 0 {
		t.Error("rejected request must not be published")
	}
}

func TestSend_UnknownChannelSkipsAdmission(t *testing.T) {
	svc, admitter, _, _ := newTestIntake()
	req := validRequest()
	req.ChannelCode = "FAX"

	_, err := svc.Send(context.Background(), req)
	if !errors.Is(err, ErrChannelUnknown) {
		t.Fatalf("err = %v, want ErrChannelUnknown", err)
	}
	if admitter.calls != 0 {
		t.Error("unknown channel must not consume quota")
	}
}

func TestSend_ValidationFailureSkipsAdmission(t *testing.T) {
	svc, admitter, _, _ := newTestIntake()
	req := validRequest()
	req.Recipient = "  "

	_, err := svc.Send(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if admitter.calls != 0 {
		t.Error("invalid request must not consume quota")
	}
}

func TestSend_PersistFailureFailsRequest(t *testing.T) {
	svc, _, repo, producer := newTestIntake()
	repo.createErr = errors.New("db down")

	_, err := svc.Send(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if len(producer.events) != 0 {
		t.Error("unpersisted notification must not be published")
	}
}

func TestSend_NilProducer(t *testing.T) {
	admitter := &mockAdmitter{}
	repo := &mockNotificationRepo{}
	channels := &mockChannelRepo{codes: map[string]bool{"EMAIL": true}}
	svc := NewIntakeService(admitter, repo, channels, nil)

	if _, err := svc.Send(context.Background(), validRequest()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("persisted = %d records, want 1", len(repo.created))
	}
}

func TestSend_TemplateOnlyContent(t *testing.T) {
	svc, _, _, _ := newTestIntake()
	req := validRequest()
	req.Content = ""
	req.TemplateID = "welcome-v2"

	if _, err := svc.Send(context.Background(), req); err != nil {
		t.Fatalf("Send: %v, template id should satisfy the content requirement", err)
	}
}
