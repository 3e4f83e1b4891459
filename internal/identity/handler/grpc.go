package handler

import (
	"context"
	"errors"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "notification-control-plane/backend/api/generated/auth/v1"
	"notification-control-plane/backend/internal/identity/service"
)

// Server implements AuthService (proto server) for tenant registration and login.
// Proto: auth/v1/auth.proto → internal/identity/handler.
type Server struct {
	authv1.UnimplementedAuthServiceServer
	auth *service.AuthService
}

// NewServer returns a new Auth gRPC server. auth may be nil; then all RPCs return Unimplemented.
func NewServer(auth *service.AuthService) *Server {
	return &Server{auth: auth}
}

// Register creates a tenant account. The plan seeds the quota ledger.
func (s *Server) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.RegisterResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method Register not implemented")
	}
	res, err := s.auth.Register(ctx, req.GetName(), req.GetEmail(), req.GetPassword(), req.GetPlan())
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		}
		if isValidationError(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		log.Printf("auth: register: %v", err)
		return nil, status.Error(codes.Internal, "failed to register tenant")
	}
	return &authv1.RegisterResponse{TenantId: res.TenantID}, nil
}

// Login authenticates a tenant and returns a bearer access token.
func (s *Server) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.LoginResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method Login not implemented")
	}
	res, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		log.Printf("auth: login: %v", err)
		return nil, status.Error(codes.Internal, "failed to log in")
	}
	return &authv1.LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(res.ExpiresAt).Seconds()),
	}, nil
}

// isValidationError reports whether err comes from input validation rather
// than a dependency failure. Validation errors are safe to echo to clients.
func isValidationError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"email", "invalid email", "password", "unknown plan", "name"} {
		if len(msg) >= len(prefix) && msg[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
