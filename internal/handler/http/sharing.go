package http

import (
	"encoding/json"
	"net/http"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

func (h *Handler) setSharing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.setSharing").Msg("no account ID was given")
		http.Error(w, "no account ID was given", http.StatusBadRequest)
		return
	}

	var req models.SharingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setSharing").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Sharing.SetSharing(ctx, accountID, req); err != nil {
		log.Err(err).Str("func", "*Handler.setSharing").Str("category", req.Category).Msg("error applying sharing toggle")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
