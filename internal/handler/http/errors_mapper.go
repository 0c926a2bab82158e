package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tenant-vet/internal/adapter"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:      http.StatusBadRequest,
	service.ErrInvalidCallback: http.StatusBadRequest,
	service.ErrUnknownPlan:     http.StatusBadRequest,
	service.ErrInvalidQuota:    http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrQuotaExceeded: http.StatusPaymentRequired,

	service.ErrCheckNotFound: http.StatusNotFound,
	service.ErrNoWorkflow:    http.StatusNotFound,
	service.ErrUserNotFound:  http.StatusNotFound,

	service.ErrLoginTaken: http.StatusConflict,

	adapter.ErrOrchestration:         http.StatusBadGateway,
	service.ErrOrchestrationDisabled: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry
// the error text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
