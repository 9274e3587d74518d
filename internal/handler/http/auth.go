package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	auth, err := h.services.Auth.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("account registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("account_id", auth.AccountID).Msg("account registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", auth.Token))
	utils.WriteJSON(w, auth, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	auth, err := h.services.Auth.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("account_id", auth.AccountID).Msg("account logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", auth.Token))
	utils.WriteJSON(w, auth, http.StatusOK)
}
