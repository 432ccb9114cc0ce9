package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// Options configures the optional parts of the HTTP surface.
type Options struct {
	// StaticDir is served at "/" when set.
	StaticDir      string
	AllowedOrigins []string
	// Currency labels fiat values in responses.
	Currency string
	// Tokens issues session tokens on /api/auth. Nil disables tokens.
	Tokens *TokenIssuer
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case and a logger for structured logging.
// Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	opts   Options
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger, opts: opts}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(corsMiddleware(opts.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth", h.handleAuth)
		r.Post("/generate-description", h.handleGenerateDescription)
		r.Get("/price", h.handlePrice)
		r.Get("/contract/balance", h.handleContractBalance)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/participate", h.handleParticipate)
				r.Post("/claim", h.handleClaim)
				r.Get("/analytics", h.handleAnalytics)
			})
		})
	})

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
