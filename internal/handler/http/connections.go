package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/service"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

func (h *Handler) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.acceptInvitation").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.acceptInvitation").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Only the invitee can accept on their own behalf.
	if req.InviteeUserID != userID {
		log.Error().Str("func", "*Handler.acceptInvitation").Str("invitee_user_id", req.InviteeUserID).Msg("invitee does not match authenticated user")
		writeError(w, service.ErrAccountMismatch)
		return
	}

	connection, err := h.services.Connections.AcceptInvitation(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.acceptInvitation").Msg("error accepting invitation")
		writeError(w, err)
		return
	}

	log.Info().Str("connection_id", connection.ID).Msg("sync connection accepted")

	utils.WriteJSON(w, connection, http.StatusOK)
}

func (h *Handler) severConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.severConnection").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	connectionID := chi.URLParam(r, "id")

	if err := h.services.Connections.Sever(ctx, connectionID, userID); err != nil {
		log.Err(err).Str("func", "*Handler.severConnection").Str("connection_id", connectionID).Msg("error severing connection")
		writeError(w, err)
		return
	}

	log.Info().Str("connection_id", connectionID).Msg("sync connection severed")

	w.WriteHeader(http.StatusNoContent)
}
