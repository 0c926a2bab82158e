// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/utils"
	"github.com/MKhiriev/go-tenant-vet/models"
)

const checkIDParam = "checkID"

// submitCheck admits and stores a new check. It answers 201 as soon as the
// record exists; the check itself runs in the background.
func (h *Handler) submitCheck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submitCheck").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.CheckService.Submit(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, "*Handler.submitCheck", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) listChecks(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	checks, err := h.services.CheckService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listChecks", err)
		return
	}
	if checks == nil {
		checks = []models.CheckRecord{}
	}

	utils.WriteJSON(w, checks, http.StatusOK)
}

func (h *Handler) getCheck(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	check, err := h.services.CheckService.Get(r.Context(), userID, chi.URLParam(r, checkIDParam))
	if err != nil {
		writeError(w, r, "*Handler.getCheck", err)
		return
	}

	utils.WriteJSON(w, check, http.StatusOK)
}

// checkWorkflow proxies the remote workflow status of the caller's check.
func (h *Handler) checkWorkflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	status, err := h.services.CheckService.WorkflowStatus(r.Context(), userID, chi.URLParam(r, checkIDParam))
	if err != nil {
		writeError(w, r, "*Handler.checkWorkflow", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
