package handler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "notification-control-plane/backend/api/generated/notification/v1"
	"notification-control-plane/backend/internal/channel/domain"
)

// mockChannelRepo implements channelrepo.Repository for tests.
type mockChannelRepo struct {
	mu     sync.Mutex
	byCode map[string]*domain.Channel
	getErr error
}

func newMockChannelRepo() *mockChannelRepo {
	return &mockChannelRepo{byCode: make(map[string]*domain.Channel)}
}

func (m *mockChannelRepo) Create(ctx context.Context, c *domain.Channel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c2 := *c
	m.byCode[c.Code] = &c2
	return nil
}

func (m *mockChannelRepo) GetByCode(ctx context.Context, code string) (*domain.Channel, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byCode[code], nil
}

func (m *mockChannelRepo) List(ctx context.Context) ([]*domain.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Channel
	for _, c := range m.byCode {
		out = append(out, c)
	}
	return out, nil
}

func TestCreateChannel_Success(t *testing.T) {
	srv := NewServer(newMockChannelRepo())

	resp, err := srv.CreateChannel(context.Background(), &notificationv1.CreateChannelRequest{
		Code: "email", Name: "Email", Description: "SMTP delivery",
	})
	if err != nil {
		t.Fatalf("CreateChannel: %v", err)
	}
	if resp.Channel == nil {
		t.Fatal("channel is nil")
	}
	if resp.Channel.Code != "EMAIL" {
		t.Errorf("code = %q, want normalized EMAIL", resp.Channel.Code)
	}
	if resp.Channel.Id == "" {
		t.Error("id should be assigned")
	}
}

func TestCreateChannel_DuplicateCode(t *testing.T) {
	srv := NewServer(newMockChannelRepo())
	req := &notificationv1.CreateChannelRequest{Code: "SMS", Name: "SMS"}
	if _, err := srv.CreateChannel(context.Background(), req); err != nil {
		t.Fatalf("CreateChannel: %v", err)
	}
	_, err := srv.CreateChannel(context.Background(), req)
	if status.Code(err) != codes.AlreadyExists {
		t.Errorf("code = %v, want AlreadyExists", status.Code(err))
	}
}

func TestCreateChannel_Validation(t *testing.T) {
	srv := NewServer(newMockChannelRepo())
	testCases := []struct {
		name string
		req  *notificationv1.CreateChannelRequest
	}{
		{"empty code", &notificationv1.CreateChannelRequest{Name: "Email"}},
		{"empty name", &notificationv1.CreateChannelRequest{Code: "EMAIL"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := srv.CreateChannel(context.Background(), tc.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("code = %v, want InvalidArgument", status.Code(err))
			}
		})
	}
}

func TestGetChannel_Success(t *testing.T) {
	srv := NewServer(newMockChannelRepo())
	if _, err := srv.CreateChannel(context.Background(), &notificationv1.CreateChannelRequest{
		Code: "EMAIL", Name: "Email",
	}); err != nil {
		t.Fatalf("CreateChannel: %v", err)
	}

	resp, err := srv.GetChannel(context.Background(), &notificationv1.GetChannelRequest{Code: "email"})
	if err != nil {
		t.Fatalf("GetChannel: %v", err)
	}
	if resp.Channel.Code != "EMAIL" {
		t.Errorf("code = %q, want EMAIL", resp.Channel.Code)
	}
}

func TestGetChannel_NotFound(t *testing.T) {
	srv := NewServer(newMockChannelRepo())
	_, err := srv.GetChannel(context.Background(), &notificationv1.GetChannelRequest{Code: "FAX"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("code = %v, want NotFound", status.Code(err))
	}
}

func TestGetChannel_RepoError(t *testing.T) {
	repo := newMockChannelRepo()
	repo.getErr = errors.New("db down")
	srv := NewServer(repo)
	_, err := srv.GetChannel(context.Background(), &notificationv1.GetChannelRequest{Code: "EMAIL"})
	if status.Code(err) != codes.Internal {
		t.Errorf("code = %v, want Internal", status.Code(err))
	}
}

func TestListChannels(t *testing.T) {
	srv := NewServer(newMockChannelRepo())
	for _, code := range []string{"EMAIL", "SMS", "PUSH"} {
		if _, err := srv.CreateChannel(context.Background(), &notificationv1.CreateChannelRequest{
			Code: code, Name: code,
		}); err != nil {
			t.Fatalf("CreateChannel(%s): %v", code, err)
		}
	}
	resp, err := srv.ListChannels(context.Background(), &notificationv1.ListChannelsRequest{})
	if err != nil {
		t.Fatalf("ListChannels: %v", err)
	}
	if len(resp.Channels) != 3 {
		t.Errorf("len(channels) = %d, want 3", len(resp.Channels))
	}
}
