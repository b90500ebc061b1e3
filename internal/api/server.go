package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/query"
	"github.com/lougail/github-users-api/pkg/log"
)

// Server wraps the HTTP server serving the read-only user API.
type Server struct {
	Logger log.Logger
	Config *cfg.Config
	router *chi.Mux
	server *http.Server
}

func NewServer(logger log.Logger, config *cfg.Config, querySvc *query.Service) (*Server, error) {
	handler, err := NewHandler(logger, config, querySvc)
	if err != nil {
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(RequestLogger(logger))

	// Permissive CORS, GET only
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	handler.RegisterRoutes(router)

	return &Server{
		Logger: logger,
		Config: config,
		router: router,
	}, nil
}

// Router exposes the handler tree, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Api.Host, s.Config.Api.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.Logger.Info(context.Background(), "Starting API server on %s", addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		s.Logger.Info(ctx, "Shutting down API server")
		return s.server.Shutdown(ctx)
	}
	return nil
}
