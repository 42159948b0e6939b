// pkg/api/handlers.go
package api

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/aleka07/edge-frontend/frontend/pkg/backend"
	"github.com/aleka07/edge-frontend/frontend/pkg/metrics"
)

const (
	pageTitle         = "Frontend"
	serviceName       = "frontend"
	msgBackendFailure = "Failed to fetch data from backend"
	indexTemplateName = "index.html"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type indexPage struct {
	Title      string
	BackendURL string
}

// --- Health Check Handler ---

// Health reports liveness with a fixed payload; it never consults the backend.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, s.logger).SendJSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: serviceName,
	})
}

// Index renders the landing page with the configured backend URL.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := s.pages.ExecuteTemplate(&buf, indexTemplateName, indexPage{
		Title:      pageTitle,
		BackendURL: s.cfg.BackendBaseURL,
	})
	if err != nil {
		s.logger.Error("failed to render index page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Data relays the backend's /api/data response. Any failure collapses to a
// fixed 500 body; the cause is only logged.
func (s *Server) Data(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, s.logger)
	ctx := r.Context()

	start := time.Now()
	payload, err := s.backend.FetchData(ctx)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.ObserveBackendFetch(metrics.OutcomeFailure, elapsed)
		logger := s.logger.With("request_id", middleware.GetReqID(ctx), "elapsed", elapsed)
		if errors.Is(err, backend.ErrUnavailable) {
			logger.Warn("backend fetch failed", "error", err)
		} else {
			logger.Error("unexpected backend client error", "error", err)
		}
		rw.SendError(http.StatusInternalServerError, msgBackendFailure)
		return
	}

	s.metrics.ObserveBackendFetch(metrics.OutcomeSuccess, elapsed)
	rw.SendRaw(http.StatusOK, payload)
}
