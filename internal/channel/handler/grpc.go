package handler

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "notification-control-plane/backend/api/generated/notification/v1"
	"notification-control-plane/backend/internal/channel/domain"
	channelrepo "notification-control-plane/backend/internal/channel/repository"
)

// Server implements ChannelService (proto server) for delivery channel management.
// Proto: notification/v1/notification.proto → internal/channel/handler.
type Server struct {
	notificationv1.UnimplementedChannelServiceServer
	channelRepo channelrepo.Repository
}

// NewServer returns a new Channel gRPC server. channelRepo may be nil; then all RPCs return Unimplemented.
func NewServer(channelRepo channelrepo.Repository) *Server {
	return &Server{channelRepo: channelRepo}
}

// CreateChannel registers a new delivery channel. Codes are unique.
func (s *Server) CreateChannel(ctx context.Context, req *notificationv1.CreateChannelRequest) (*notificationv1.CreateChannelResponse, error) {
	if s.channelRepo == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateChannel not implemented")
	}
	c := &domain.Channel{
		ID:          uuid.New().String(),
		Code:        strings.ToUpper(strings.TrimSpace(req.GetCode())),
		Name:        strings.TrimSpace(req.GetName()),
		Description: strings.TrimSpace(req.GetDescription()),
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	existing, err := s.channelRepo.GetByCode(ctx, c.Code)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to look up channel")
	}
	if existing != nil {
		return nil, status.Error(codes.AlreadyExists, "channel code already exists")
	}
	if err := s.channelRepo.Create(ctx, c); err != nil {
		log.Printf("channel: create %s: %v", c.Code, err)
		return nil, status.Error(codes.Internal, "failed to create channel")
	}
	return &notificationv1.CreateChannelResponse{Channel: domainChannelToProto(c)}, nil
}

// GetChannel returns a channel by code.
func (s *Server) GetChannel(ctx context.Context, req *notificationv1.GetChannelRequest) (*notificationv1.GetChannelResponse, error) {
	if s.channelRepo == nil {
		return nil, status.Error(codes.Unimplemented, "method GetChannel not implemented")
	}
	code := strings.ToUpper(strings.TrimSpace(req.GetCode()))
	if code == "" {
		return nil, status.Error(codes.InvalidArgument, "code required")
	}
	c, err := s.channelRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to look up channel")
	}
	if c == nil {
		return nil, status.Error(codes.NotFound, "channel not found")
	}
	return &notificationv1.GetChannelResponse{Channel: domainChannelToProto(c)}, nil
}

// ListChannels returns all channels.
func (s *Server) ListChannels(ctx context.Context, req *notificationv1.ListChannelsRequest) (*notificationv1.ListChannelsResponse, error) {
	if s.channelRepo == nil {
		return nil, status.Error(codes.Unimplemented, "method ListChannels not implemented")
	}
	channels, err := s.channelRepo.List(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to list channels")
	}
	out := make([]*notificationv1.Channel, 0, len(channels))
	for _, c := range channels {
		out = append(out, domainChannelToProto(c))
	}
	return &notificationv1.ListChannelsResponse{Channels: out}, nil
}

func domainChannelToProto(c *domain.Channel) *notificationv1.Channel {
	if c == nil {
		return nil
	}
	return &notificationv1.Channel{
		Id:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}
