// Package server wires proto gRPC services to their handlers for the two
// deployable servers: the tenant server (auth, tenants, API keys) and the
// notification server (intake, channels).
package server

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	apikeyv1 "notification-control-plane/backend/api/generated/apikey/v1"
	authv1 "notification-control-plane/backend/api/generated/auth/v1"
	notificationv1 "notification-control-plane/backend/api/generated/notification/v1"
	tenantv1 "notification-control-plane/backend/api/generated/tenant/v1"

	apikeyhandler "notification-control-plane/backend/internal/apikey/handler"
	apikeyservice "notification-control-plane/backend/internal/apikey/service"
	channelhandler "notification-control-plane/backend/internal/channel/handler"
	channelrepo "notification-control-plane/backend/internal/channel/repository"
	identityhandler "notification-control-plane/backend/internal/identity/handler"
	identityservice "notification-control-plane/backend/internal/identity/service"
	notificationhandler "notification-control-plane/backend/internal/notification/handler"
	notificationservice "notification-control-plane/backend/internal/notification/service"
	tenanthandler "notification-control-plane/backend/internal/tenant/handler"
	tenantrepo "notification-control-plane/backend/internal/tenant/repository"
)

// TenantDeps holds optional service dependencies for the tenant server's handlers.
type TenantDeps struct {
	// Auth is the auth service for Register/Login. If nil, auth RPCs return Unimplemented.
	Auth *identityservice.AuthService
	// TenantRepo backs TenantService (ReserveQuota, GetTenant). If nil, tenant RPCs return Unimplemented.
	TenantRepo tenantrepo.Repository
	// APIKeys is the API key service. If nil, API key RPCs return Unimplemented.
	APIKeys *apikeyservice.Service
}

// RegisterTenantServices registers the tenant server's proto services.
//
// Proto → handler mapping:
//   - AuthService   → internal/identity/handler
//   - TenantService → internal/tenant/handler
//   - APIKeyService → internal/apikey/handler
func RegisterTenantServices(s grpc.ServiceRegistrar, deps TenantDeps) {
	authv1.RegisterAuthServiceServer(s, identityhandler.NewServer(deps.Auth))
	tenantv1.RegisterTenantServiceServer(s, tenanthandler.NewServer(deps.TenantRepo))
	apikeyv1.RegisterAPIKeyServiceServer(s, apikeyhandler.NewServer(deps.APIKeys))
	healthpb.RegisterHealthServer(s, health.NewServer())
}

// NotificationDeps holds optional service dependencies for the notification server's handlers.
type NotificationDeps struct {
	// Intake is the notification intake pipeline. If nil, SendNotification returns Unimplemented.
	Intake *notificationservice.IntakeService
	// ChannelRepo backs ChannelService. If nil, channel RPCs return Unimplemented.
	ChannelRepo channelrepo.Repository
}

// RegisterNotificationServices registers the notification server's proto services.
//
// Proto → handler mapping:
//   - NotificationService → internal/notification/handler
//   - ChannelService      → internal/channel/handler
func RegisterNotificationServices(s grpc.ServiceRegistrar, deps NotificationDeps) {
	notificationv1.RegisterNotificationServiceServer(s, notificationhandler.NewServer(deps.Intake))
	notificationv1.RegisterChannelServiceServer(s, channelhandler.NewServer(deps.ChannelRepo))
	healthpb.RegisterHealthServer(s, health.NewServer())
}
