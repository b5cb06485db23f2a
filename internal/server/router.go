package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/internal/render"
)

// RouterConfig wires the router's dependencies. Metrics may be nil.
type RouterConfig struct {
	Site     *portfolio.Site
	Renderer *render.Renderer
	Metrics  *Metrics
	Logger   *slog.Logger
}

// NewRouter builds the HTTP handler:
//
//	GET /health
//	GET /api/{kind}
//	GET /api/{kind}/slugs
//	GET /api/{kind}/{slug}
//	GET /metrics
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	content := NewContentHandler(cfg.Site, cfg.Renderer)

	r := chi.NewRouter()

	r.Use(RequestID(logger))
	r.Use(AccessLog)
	r.Use(chimw.Recoverer)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Error(w, r, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		Error(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", Health)

	r.Route("/api/{kind}", func(r chi.Router) {
		r.Get("/", content.List)
		r.Get("/slugs", content.Slugs)
		r.Get("/{slug}", content.Get)
	})

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, MetricsPath, cfg.Metrics.Handler())
	}

	return r
}
