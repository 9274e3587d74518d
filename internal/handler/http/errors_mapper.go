package http

import (
	"errors"
	"net/http"

	"github.com/kinkeeper-app/kinkeeper/internal/service"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidEntity:          http.StatusBadRequest,
	service.ErrWrongPassword:          http.StatusUnauthorized,
	service.ErrEmailTaken:             http.StatusConflict,
	service.ErrNotFound:               http.StatusNotFound,
	service.ErrAccountMismatch:        http.StatusForbidden,
	service.ErrNotParticipant:         http.StatusForbidden,
	service.ErrInvalidConnectionState: http.StatusConflict,
	service.ErrNoPrimaryProfile:       http.StatusConflict,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrUnknownFamily: http.StatusBadRequest,
	store.ErrDuplicate:     http.StatusConflict,

	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRow:    http.StatusInternalServerError,
	store.ErrScanningRows:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the uniform JSON error body with the status
// code statusFromError maps it to.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.APIError{Error: err.Error()}, statusFromError(err))
}
