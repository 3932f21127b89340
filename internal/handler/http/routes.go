package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
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
	})

	// routes behind the identity gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/users/follow/{username}", h.follow)
		r.Post("/api/users/unfollow/{username}", h.unfollow)
		r.Post("/api/users/accept/{username}", h.acceptRequest)
		r.Post("/api/users/reject/{username}", h.rejectRequest)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
