// Package httpapi exposes ingest and search over HTTP.
// Two operations only: GET /search returns preview links and PUT /upload
// submits a content record, enforcing the same create-only-if-absent
// rule as the content store. Concurrent uploads for one identifier are
// safe: the first writer wins, the second observes a conflict.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/kartka-labs/kartka-cli/internal/core/ports/driving"
	"github.com/kartka-labs/kartka-cli/internal/logger"
)

// ShutdownTimeout bounds how long Shutdown waits for in-flight
// requests on interrupt.
const ShutdownTimeout = 10 * time.Second

// Server serves the HTTP boundary.
type Server struct {
	search    driving.SearchService
	documents driving.DocumentService
	limiter   *rate.Limiter
	http      *http.Server
}

// NewServer creates the HTTP server.
// Uploads are throttled by a token bucket so a misbehaving client
// cannot flood the index.
func NewServer(addr string, search driving.SearchService, documents driving.DocumentService, uploadsPerSecond float64, uploadBurst int) *Server {
	s := &Server{
		search:    search,
		documents: documents,
		limiter:   rate.NewLimiter(rate.Limit(uploadsPerSecond), uploadBurst),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/search", s.handleSearch)
	r.With(s.throttleUploads).Put("/upload", s.handleUpload)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Handler returns the route handler. Useful for testing.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	logger.Info("HTTP boundary listening on %s", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// throttleUploads rejects uploads beyond the configured rate.
func (s *Server) throttleUploads(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeUploadResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
