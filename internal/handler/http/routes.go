package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-tenant-vet/internal/service"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/health", h.health)
		r.Get("/plans", h.plans)
		r.Get("/version", h.getServerVersion)
	})

	// the orchestration dependency authenticates with a body signature
	router.Group(func(r chi.Router) {
		r.Use(h.callbackSignature)
		r.Post(service.CallbackPath, h.orchestrationCallback)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/checks", h.submitCheck)
		r.Get("/checks", h.listChecks)
		r.Get("/checks/{checkID}", h.getCheck)
		r.Get("/checks/{checkID}/workflow", h.checkWorkflow)
		r.Get("/account", h.account)
		r.Post("/subscription", h.changeSubscription)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
