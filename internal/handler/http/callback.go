package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/utils"
)

type callbackAck struct {
	Received bool `json:"received"`
}

// orchestrationCallback hands the raw callback body to the check engine.
// Unknown workflows and repeated callbacks are acknowledged with 200 so the
// dependency stops retrying.
func (h *Handler) orchestrationCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.orchestrationCallback").Msg("failed to read request body")
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	if err := h.services.CheckService.HandleCallback(r.Context(), body); err != nil {
		writeError(w, r, "*Handler.orchestrationCallback", err)
		return
	}

	utils.WriteJSON(w, callbackAck{Received: true}, http.StatusOK)
}
