package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.snapshot").Msg("no account ID was given")
		http.Error(w, "no account ID was given", http.StatusBadRequest)
		return
	}

	family := chi.URLParam(r, "family")

	records, err := h.services.Sync.Snapshot(ctx, family, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.snapshot").Str("family", family).Msg("error building family snapshot")
		writeError(w, err)
		return
	}

	response := models.SnapshotResponse{
		Family:  family,
		Records: records,
		Length:  len(records),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.upsert").Msg("no account ID was given")
		http.Error(w, "no account ID was given", http.StatusBadRequest)
		return
	}

	var req models.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upsert").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The body record is authoritative, the path is just routing: a record
	// posted under the wrong family is rejected instead of silently rehomed.
	if family := chi.URLParam(r, "family"); req.Record.Family != family {
		log.Error().Str("func", "*Handler.upsert").Str("family", family).Str("record_family", req.Record.Family).Msg("family mismatch between path and record")
		http.Error(w, "family mismatch between path and record", http.StatusBadRequest)
		return
	}

	saved, err := h.services.Sync.Upsert(ctx, accountID, req.Record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsert").Str("family", req.Record.Family).Str("entity_id", req.Record.EntityID).Msg("error upserting record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteRecord").Msg("no account ID was given")
		http.Error(w, "no account ID was given", http.StatusBadRequest)
		return
	}

	family := chi.URLParam(r, "family")
	entityID := chi.URLParam(r, "id")

	if err := h.services.Sync.Delete(ctx, family, entityID, accountID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("family", family).Str("entity_id", entityID).Msg("error deleting record")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
