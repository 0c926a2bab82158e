package handler

import (
	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/handler/grpc"
	"github.com/MKhiriev/go-tenant-vet/internal/handler/http"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/service"
)

// Handlers groups the transport handlers enabled by the server
// configuration.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
