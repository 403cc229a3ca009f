// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/apollo/internal/collection"
	"github.com/taibuivan/apollo/internal/list"
	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/platform/config"
	"github.com/taibuivan/apollo/internal/platform/constants"
	"github.com/taibuivan/apollo/internal/platform/middleware"
	"github.com/taibuivan/apollo/internal/transfer"
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

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Objekt serves the catalog, list and ownership queries.
	Objekt *objekt.Handler

	// List manages objekt lists.
	List *list.Handler

	// Collection serves catalog details and filter metadata.
	Collection *collection.Handler

	// Transfer serves transfer history.
	Transfer *transfer.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.SelectedArtists())
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health checks for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		registerRoutes(api, h)
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

// registerRoutes mounts every domain under the versioned prefix.
func registerRoutes(api chi.Router, h Handlers) {
	api.Mount("/objekts", h.Objekt.Routes())
	api.Mount("/collections", h.Collection.Routes())
	api.Get("/filters", h.Collection.Filters)

	api.Route("/lists", func(lists chi.Router) {
		lists.Get("/{listID}/objekts", h.Objekt.ListObjekts)
		lists.Mount("/", h.List.Routes())
	})

	api.Get("/users/{userID}/lists", h.List.UserLists)

	api.Route("/profiles/{address}", func(profile chi.Router) {
		profile.Get("/objekts", h.Objekt.ProfileObjekts)
		profile.Get("/transfers", h.Transfer.History)
	})
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
