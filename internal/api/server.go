// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
catalog handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Every /api request passes the general rate limit. Mutating routes and login
additionally pass the sensitive rate limit, and mutating routes then the
authorization gate, before any catalog code runs.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/grandline/internal/core/character"
	"github.com/taibuivan/grandline/internal/core/devilfruit"
	"github.com/taibuivan/grandline/internal/core/organization"
	"github.com/taibuivan/grandline/internal/core/ship"
	"github.com/taibuivan/grandline/internal/core/taxonomy"
	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/config"
	"github.com/taibuivan/grandline/internal/platform/constants"
	"github.com/taibuivan/grandline/internal/platform/middleware"
	"github.com/taibuivan/grandline/internal/platform/ratelimit"
	"github.com/taibuivan/grandline/internal/platform/respond"
	"github.com/taibuivan/grandline/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Metrics serves the Prometheus registry.
	Metrics http.Handler

	Auth          *auth.Handler
	Taxonomy      []*taxonomy.Handler
	Characters    *character.Handler
	DevilFruits   *devilfruit.Handler
	Organizations *organization.Handler
	Ships         *ship.Handler
}

// Limiters are the two rate limit tiers.
type Limiters struct {
	// General applies to every /api request.
	General ratelimit.Limiter

	// Sensitive applies to mutations and login.
	Sensitive ratelimit.Limiter
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, limiters Limiters, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.ClientIP(cfg.TrustedProxies()))
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Instrument())
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.ExposeErrors(cfg.IsDevelopment()))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, &apperr.AppError{
			Code:       "METHOD_NOT_ALLOWED",
			Message:    "Method not allowed",
			HTTPStatus: http.StatusMethodNotAllowed,
		})
	})

	// # Infrastructure Endpoints
	// Unlimited probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/metrics", h.Metrics)

	// # Application API
	sensitiveLimit := middleware.RateLimit(limiters.Sensitive)
	sensitive := chi.Middlewares{sensitiveLimit}
	protected := chi.Middlewares{sensitiveLimit, middleware.Authenticate(verifier)}

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RateLimit(limiters.General))

		api.Mount("/auth", h.Auth.Routes(sensitive, protected))
		for _, handler := range h.Taxonomy {
			api.Mount("/"+handler.Slug(), handler.Routes(protected))
		}
		api.Mount("/characters", h.Characters.Routes(protected))
		api.Mount("/devil-fruits", h.DevilFruits.Routes(protected))
		api.Mount("/organizations", h.Organizations.Routes(protected))
		api.Mount("/ships", h.Ships.Routes(protected))
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
