package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/handler"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/service"
	"github.com/MKhiriev/go-tenant-vet/internal/workers"
)

const healthWorkerName = "orchestration-health"

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	// background holds the periodic jobs that live as long as the servers.
	background *workers.Workers

	// checks is drained on shutdown so that in-flight dispatches finish
	// writing their results.
	checks service.CheckService

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		background: workers.NewWorkers(),
		checks:     services.CheckService,
		logger:     logger,
	}

	if cfg.Server.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)
	}
	if cfg.Server.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg.Server, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
		servers.background.Add(workers.NewPeriodicWorker(healthWorkerName, cfg.Workers.HealthInterval, handlers.GRPC.RefreshHealth, logger))
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops the transports first, then waits for background check
// work so that no result is lost.
func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}

	if s.checks != nil {
		s.logger.Info().Msg("waiting for in-flight checks")
		s.checks.Wait()
	}
}

func (s *server) run() error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errors.New("no servers to run")
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.background.Run(ctx)

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()
		s.background.Wait()

		close(idleConnectionsClosed)
	}()

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
