package http

import (
	"net/http"

	"github.com/MKhiriev/go-tenant-vet/internal/utils"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// health is the liveness endpoint. A degraded orchestration dependency is
// reported in the body but never fails the request.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.HealthResponse{
		Status:        "ok",
		Version:       h.services.AppInfoService.GetAppVersion(ctx),
		Orchestration: h.services.OrchestrationService.HealthCheck(ctx),
	}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
