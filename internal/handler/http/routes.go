package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kinkeeper-app/kinkeeper/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sync/{family}", h.snapshot)
		r.Put("/api/sync/{family}", h.upsert)
		r.Delete("/api/sync/{family}/{id}", h.deleteRecord)

		r.Post("/api/connections/accept", h.acceptInvitation)
		r.Post("/api/connections/{id}/sever", h.severConnection)

		r.Put("/api/sharing", h.setSharing)
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
