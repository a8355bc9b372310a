// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/utils"
	"github.com/avolkov/nutrisync/models"
)

func (h *Handler) syncRound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncRound").Msg("no owner ID in request context")
		http.Error(w, "no owner ID was given", http.StatusUnauthorized)
		return
	}

	var request models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.syncRound").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.DeviceID == "" {
		log.Error().Str("func", "*Handler.syncRound").Msg("sync request without device ID")
		http.Error(w, "device_id is required", http.StatusBadRequest)
		return
	}

	response, err := h.services.Sync.SyncRound(ctx, ownerID, request)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.syncRound").
			Int64("owner_id", ownerID).
			Str("device_id", request.DeviceID).
			Msg("sync round failed")
		http.Error(w, "sync round failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncStatus").Msg("no owner ID in request context")
		http.Error(w, "no owner ID was given", http.StatusUnauthorized)
		return
	}

	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		http.Error(w, "device_id is required", http.StatusBadRequest)
		return
	}

	status, err := h.services.Sync.Status(ctx, ownerID, deviceID)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.syncStatus").
			Int64("owner_id", ownerID).
			Str("device_id", deviceID).
			Msg("status query failed")
		http.Error(w, "status query failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
