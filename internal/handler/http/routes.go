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
		r.Post("/api/account/register", h.register)
		r.Post("/api/account/login", h.login)
		r.Get("/api/account/availability", h.availability)
		r.Post("/api/account/forgot-username", h.usernameByEmail)

		r.Post("/api/recovery/start", h.recoveryStart)
		r.Post("/api/recovery/answer", h.recoveryAnswer)
		r.Post("/api/recovery/password", h.recoveryPassword)
	})

	// routes that require a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/goal", h.getGoal)
		r.Put("/api/goal", h.setGoal)

		r.Post("/api/measurements", h.appendMeasurement)
		r.Get("/api/measurements", h.listMeasurements)
		r.Put("/api/measurements/{id}", h.updateMeasurement)
		r.Delete("/api/measurements/{id}", h.deleteMeasurement)
	})

	return router
}
