// Package grpc exposes the standard gRPC health service. The status of the
// orchestration dependency is published under its own service name so that
// load balancers and operators can watch it separately from the process.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/service"
)

// OrchestrationServiceName is the health service name that reflects the
// orchestration dependency.
const OrchestrationServiceName = "orchestration"

// Handler is the root gRPC transport handler.
//
// It owns the health server registered on the gRPC server. The process
// itself ("") is reported SERVING as long as the server runs; the
// orchestration status is refreshed by RefreshHealth.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Until the first refresh the orchestration service reports
// NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus(OrchestrationServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// RefreshHealth checks the orchestration dependency and publishes the
// result. A disconnected dependency is not an error of the refresh itself.
func (h *Handler) RefreshHealth(ctx context.Context) error {
	status := healthpb.HealthCheckResponse_NOT_SERVING

	dependency := h.services.OrchestrationService.HealthCheck(ctx)
	if dependency.Connected {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(OrchestrationServiceName, status)

	h.logger.Debug().
		Str("func", "*Handler.RefreshHealth").
		Bool("connected", dependency.Connected).
		Str("detail", dependency.Detail).
		Msg("orchestration health refreshed")

	return nil
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
