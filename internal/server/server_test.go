package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/handler"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/service"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// ---- Mocks ----

type waitRecorder struct {
	service.CheckService
	waited bool
}

func (w *waitRecorder) Wait() { w.waited = true }

type stubOrchestration struct {
	service.OrchestrationService
}

func (stubOrchestration) HealthCheck(context.Context) models.DependencyHealth {
	return models.DependencyHealth{Connected: true}
}

func testServices(checks service.CheckService) *service.Services {
	return &service.Services{
		CheckService:         checks,
		OrchestrationService: stubOrchestration{},
	}
}

// ---- NewServer ----

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, testServices(nil), config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_HTTPAndGRPC(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"},
	}
	services := testServices(&waitRecorder{})
	handlers, err := handler.NewHandlers(services, cfg.Server, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, services, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.NotNil(t, srv.httpServer)
	require.NotNil(t, srv.gRPCServer)
	assert.NotNil(t, srv.gRPCServer.gRPCNetListener)

	srv.Shutdown()
	// the listener is only owned by grpc.Server once Serve runs
	_ = srv.gRPCServer.gRPCNetListener.Close()
}

func TestNewServer_GRPCAddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.StructuredConfig{Server: config.Server{GRPCAddress: busy.Addr().String()}}
	services := testServices(nil)
	handlers, err := handler.NewHandlers(services, cfg.Server, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, services, cfg, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, s)
}

// ---- Shutdown ----

func TestShutdown_WaitsForChecks(t *testing.T) {
	checks := &waitRecorder{}
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	services := testServices(checks)
	handlers, err := handler.NewHandlers(services, cfg.Server, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, services, cfg, logger.Nop())
	require.NoError(t, err)

	s.Shutdown()

	assert.True(t, checks.waited)
}

// ---- httpServer ----

func TestHTTPServer_ServesUntilShutdown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), config.Server{HTTPAddress: addr}, logger.Nop())

	done := make(chan struct{})
	go func() {
		h.RunServer()
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	h.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestHTTPServer_Settings(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Equal(t, ":8080", h.server.Addr)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)
	assert.NotNil(t, h.server.Handler)
}
