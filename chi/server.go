// Package chi provides the HTTP API boundary for shoplens. It exposes a
// single insight-fetching endpoint plus a health check, mapping domain
// error codes onto HTTP statuses.
package chi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/shoplens"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves the insight API over HTTP.
type Server struct {
	insights   shoplens.InsightService
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates a Server for the given address.
func NewServer(addr string, insights shoplens.InsightService, logger *slog.Logger) *Server {
	s := &Server{
		insights: insights,
		logger:   logger,
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	return s
}

// Router assembles the route tree. Exposed separately so tests can drive
// the handler without a listening socket.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Post("/fetch_insights", s.handleFetchInsights)

	return r
}

// Start begins serving. Blocks until Shutdown or a listener error.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// fetchInsightsRequest is the inbound payload for POST /fetch_insights.
type fetchInsightsRequest struct {
	WebsiteURL string `json:"website_url"`
}

func (s *Server) handleFetchInsights(w http.ResponseWriter, r *http.Request) {
	var req fetchInsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	insight, err := s.insights.BuildInsight(r.Context(), req.WebsiteURL)
	if err != nil {
		s.respondError(w, statusFromError(err), shoplens.ErrorMessage(err))
		return
	}

	s.respondJSON(w, http.StatusOK, insight)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "shoplens",
	})
}

// statusFromError maps domain error codes onto HTTP statuses: bad input is
// the caller's fault, an unreachable store is an upstream failure, and
// anything else is ours.
func statusFromError(err error) int {
	switch shoplens.ErrorCode(err) {
	case shoplens.EINVALID:
		return http.StatusBadRequest
	case shoplens.ENOTFOUND:
		return http.StatusNotFound
	case shoplens.EUNREACHABLE, shoplens.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respondJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}
