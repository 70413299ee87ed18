package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/radhe721/Book-Review-api/internal/httpx"
)

func (s *Server) registerRoutes() {
	r := s.router
	h := s.opts.Handlers

	r.Use(httpx.RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.SecurityHeadersMiddleware)
	r.Use(httpx.CORSMiddleware(s.cfg.AllowedOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(s.cfg.MaxBodyBytes))
	r.Use(httpx.MetricsMiddleware(s.opts.Metrics))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, http.StatusNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Method(http.MethodGet, "/metrics", s.opts.Metrics.Handler())

	requireAuth := httpx.AuthMiddleware(s.opts.Authenticator)

	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.Catalog.List)
		r.Get("/search", h.Catalog.Search)
		r.Get("/{id}", h.Catalog.Get)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Books.Create)
			r.Post("/{id}/reviews", h.Reviews.Create)
		})
	})

	r.Route("/reviews/{id}", func(r chi.Router) {
		r.Use(requireAuth)
		r.Put("/", h.Reviews.Update)
		r.Delete("/", h.Reviews.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.Users.RegisterUser)
		r.Post("/login", h.Auth.Login)
		r.With(requireAuth).Post("/logout", h.Auth.Logout)
	})

	r.With(requireAuth).Get("/me", h.Users.GetCurrentUser)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httpx.JSONSuccess(w, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.opts.Ready == nil {
		httpx.JSONSuccess(w, map[string]string{"status": "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.opts.Ready(ctx); err != nil {
		s.logger.Printf("readiness check failed: error=%v", err)
		httpx.JSONError(w, http.StatusServiceUnavailable, "Store not ready", nil)
		return
	}
	httpx.JSONSuccess(w, map[string]string{"status": "ready"})
}
