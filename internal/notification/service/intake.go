// Package service orchestrates notification intake: validate the request,
// admit it against the tenant's quota, persist the PENDING record, and hand
// it to the broker for asynchronous delivery.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	channelrepo "notification-control-plane/backend/internal/channel/repository"
	"notification-control-plane/backend/internal/event"
	"notification-control-plane/backend/internal/notification/domain"
	"notification-control-plane/backend/internal/notification/repository"
)

var (
	// ErrChannelUnknown means the requested delivery channel is not registered.
	ErrChannelUnknown = errors.New("channel unknown")
)

// Admitter decides whether a request is admitted against the tenant's quota.
// Implemented by the quota admission controller.
type Admitter interface {
	CheckAndReserve(ctx context.Context, tenantID string) error
}

// IntakeService accepts notification requests.
type IntakeService struct {
	admitter Admitter
	repo     repository.Repository
	channels channelrepo.Repository
	producer event.Producer
}

// NewIntakeService wires the intake pipeline. producer may be nil, in which
// case admitted notifications are persisted but not published.
func NewIntakeService(admitter Admitter, repo repository.Repository, channels channelrepo.Repository, producer event.Producer) *IntakeService {
	return &IntakeService{admitter: admitter, repo: repo, channels: channels, producer: producer}
}

// Send runs the intake pipeline for one notification. On success the
// returned record has status PENDING and its quota unit is spent.
//
// Quota is consumed the moment admission succeeds. A later publish failure
// is logged and does not fail the request; a persistence failure does fail
// the request but the consumed unit is not refunded.
func (s *IntakeService) Send(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ChannelCode = strings.ToUpper(strings.TrimSpace(n.ChannelCode))
	n.Recipient = strings.TrimSpace(n.Recipient)
	if err := n.Validate(); err != nil {
		return nil, err
	}

	channel, err := s.channels.GetByCode(ctx, n.ChannelCode)
	if err != nil {
		return nil, fmt.Errorf("look up channel: %w", err)
	}
	if channel == nil {
		return nil, ErrChannelUnknown
	}

	if err := s.admitter.CheckAndReserve(ctx, n.TenantID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	n.ID = uuid.New().String()
	n.Status = domain.StatusPending
	n.CreatedAt = now
	n.UpdatedAt = now
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	s.publish(ctx, n)
	return n, nil
}

// publish hands the admitted notification to the broker. Best-effort: the
// request was already admitted and billed, so a failed write only logs.
func (s *IntakeService) publish(ctx context.Context, n *domain.Notification) {
	if s.producer == nil {
		return
	}
	e := &event.NotificationEvent{
		NotificationID: n.ID,
		TenantID:       n.TenantID,
		ChannelCode:    n.ChannelCode,
		Recipient:      n.Recipient,
		Subject:        n.Subject,
		Content:        n.Content,
		TemplateID:     n.TemplateID,
		Status:         n.Status,
		CreatedAt:      n.CreatedAt,
	}
	if err := s.producer.Emit(ctx, e); err != nil {
		log.Printf("notification: publish %s: %v", n.ID, err)
	}
}
