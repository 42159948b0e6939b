// pkg/api/server.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aleka07/edge-frontend/frontend/pkg/config"
	"github.com/aleka07/edge-frontend/frontend/pkg/metrics"
	"github.com/aleka07/edge-frontend/frontend/web"
)

// DataFetcher is the backend dependency of the /api/data route.
type DataFetcher interface {
	FetchData(ctx context.Context) (json.RawMessage, error)
}

// Server holds the handler dependencies. It has no mutable state.
type Server struct {
	cfg     config.Config
	backend DataFetcher
	pages   *template.Template
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewServer parses the page templates and returns a Server ready to route.
func NewServer(cfg config.Config, fetcher DataFetcher, m *metrics.Metrics, logger *slog.Logger) (*Server, error) {
	pages, err := template.ParseFS(web.Templates(), "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewMetrics()
	}

	return &Server{
		cfg:     cfg,
		backend: fetcher,
		pages:   pages,
		metrics: m,
		logger:  logger,
	}, nil
}

// Routes builds the chi router serving every frontend endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// --- Routes ---
	r.Get("/health", s.Health)
	r.Get("/", s.Index)
	r.Get("/api/data", s.Data)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	// static assets; explicit routes above take precedence
	r.Handle("/*", http.FileServer(http.FS(web.Public())))

	return r
}
