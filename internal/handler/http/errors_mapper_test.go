package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-tenant-vet/internal/adapter"
	"github.com/MKhiriev/go-tenant-vet/internal/service"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", service.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: email is required", service.ErrValidation), http.StatusBadRequest},
		{"invalid callback", service.ErrInvalidCallback, http.StatusBadRequest},
		{"unknown plan", service.ErrUnknownPlan, http.StatusBadRequest},
		{"invalid quota", service.ErrInvalidQuota, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"quota exceeded", service.ErrQuotaExceeded, http.StatusPaymentRequired},
		{"check not found", service.ErrCheckNotFound, http.StatusNotFound},
		{"no workflow", service.ErrNoWorkflow, http.StatusNotFound},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"login taken", service.ErrLoginTaken, http.StatusConflict},
		{"orchestration", fmt.Errorf("%w: %w", adapter.ErrOrchestration, adapter.ErrTimeout), http.StatusBadGateway},
		{"orchestration disabled", service.ErrOrchestrationDisabled, http.StatusServiceUnavailable},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_ClientErrorCarriesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/checks/x", nil))

	writeError(rr, req, "test", service.ErrCheckNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), service.ErrCheckNotFound.Error())
}

func TestWriteError_ServerErrorHidesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/checks/x", nil))

	writeError(rr, req, "test", errors.New("secret internals"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret internals")
	assert.Contains(t, rr.Body.String(), http.StatusText(http.StatusInternalServerError))
}
