package handler

import (
	"context"
	"errors"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "notification-control-plane/backend/api/generated/notification/v1"
	"notification-control-plane/backend/internal/notification/domain"
	"notification-control-plane/backend/internal/notification/service"
	"notification-control-plane/backend/internal/quota"
	"notification-control-plane/backend/internal/server/interceptors"
)

// Server implements NotificationService (proto server) for notification intake.
// Proto: notification/v1/notification.proto → internal/notification/handler.
type Server struct {
	notificationv1.UnimplementedNotificationServiceServer
	intake *service.IntakeService
}

// NewServer returns a new Notification gRPC server. intake may be nil; then all RPCs return Unimplemented.
func NewServer(intake *service.IntakeService) *Server {
	return &Server{intake: intake}
}

// SendNotification validates and admits one notification against the
// tenant's quota. The authenticated tenant from context wins over the
// request's tenant_id field.
//
// Error codes: InvalidArgument (malformed request or unknown channel),
// NotFound (ledger has no such tenant), ResourceExhausted (quota spent),
// Unavailable (quota ledger unreachable, safe to retry).
func (s *Server) SendNotification(ctx context.Context, req *notificationv1.SendNotificationRequest) (*notificationv1.SendNotificationResponse, error) {
	if s.intake == nil {
		return nil, status.Error(codes.Unimplemented, "method SendNotification not implemented")
	}

	tenantID, ok := interceptors.GetTenantID(ctx)
	if !ok || tenantID == "" {
		tenantID = strings.TrimSpace(req.GetTenantId())
	}
	if tenantID == "" {
		return nil, status.Error(codes.InvalidArgument, "tenant id required")
	}

	n := &domain.Notification{
		TenantID:    tenantID,
		ChannelCode: req.GetChannelCode(),
		Recipient:   req.GetRecipient(),
		Subject:     strings.TrimSpace(req.GetSubject()),
		Content:     req.GetContent(),
		TemplateID:  strings.TrimSpace(req.GetTemplateId()),
	}

	admitted, err := s.intake.Send(ctx, n)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChannelUnknown):
			return nil, status.Error(codes.InvalidArgument, "unknown channel")
		case errors.Is(err, quota.ErrTenantUnknown):
			return nil, status.Error(codes.NotFound, "tenant not found")
		case errors.Is(err, quota.ErrQuotaExceeded):
			return nil, status.Error(codes.ResourceExhausted, "quota exceeded")
		case errors.Is(err, quota.ErrUnavailable):
			return nil, status.Error(codes.Unavailable, "quota service unavailable, retry later")
		case isValidationError(err):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			log.Printf("notification: send for tenant %s: %v", tenantID, err)
			return nil, status.Error(codes.Internal, "failed to send notification")
		}
	}

	return &notificationv1.SendNotificationResponse{
		NotificationId: admitted.ID,
		TenantId:       admitted.TenantID,
		Status:         admitted.Status,
	}, nil
}

// isValidationError reports whether err is a request validation failure
// from domain.Notification.Validate.
func isValidationError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"tenant id", "channel code", "recipient", "content"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
