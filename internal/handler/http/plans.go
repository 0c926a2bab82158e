package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/utils"
	"github.com/MKhiriev/go-tenant-vet/models"
)

func (h *Handler) plans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PlanService.Catalogue(r.Context()), http.StatusOK)
}

// changeSubscription applies the quota of the requested plan to the caller.
func (h *Handler) changeSubscription(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.changeSubscription").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.PlanService.ChangePlan(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, "*Handler.changeSubscription", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
