package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"

	_ "github.com/wgopar/usd-conversions-agent/docs"
	"github.com/wgopar/usd-conversions-agent/internal/rate/handler"
)

type RouterOptions struct {
	SummaryEnabled bool
	AuditEnabled   bool
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func NewRouter(h *handler.Handler, opts RouterOptions) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	router.Get("/.well-known/agent.json", h.GetManifest)
	router.Post("/entrypoints/fx-rates/invoke", h.InvokeRates)
	if opts.SummaryEnabled {
		router.Post("/entrypoints/fx-summary/invoke", h.InvokeSummary)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates", h.GetRates)
		r.Get("/providers/status", h.GetProviderStatus)
		if opts.AuditEnabled {
			r.Get("/providers/attempts", h.GetProviderAttempts)
		}
	})
	return router
}
