package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/opensource-credit/harrier/internal/analyzer"
	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/history"
)

// Server represents the HTTP API server.
type Server struct {
	router  *chi.Mux
	handler *Handler
	server  *http.Server
	config  domain.ServerConfig
}

// NewServer creates a new API server.
func NewServer(cfg domain.ServerConfig, repo domain.Repository, cache domain.Cache, bus domain.EventBus, an *analyzer.Analyzer, hist *history.Service, version string) *Server {
	handler := NewHandler(repo, cache, bus, an, hist, version)
	router := chi.NewRouter()

	// Global middleware stack
	router.Use(CORSMiddleware)         // CORS for browser clients
	router.Use(RecoverMiddleware)      // Recover from panics
	router.Use(TracingMiddleware)      // OpenTelemetry tracing
	router.Use(LoggingMiddleware)      // Request logging
	router.Use(middleware.RealIP)      // Extract real IP
	router.Use(middleware.Compress(5)) // Gzip compression

	// Health endpoints (no tenant required)
	router.Get("/health", handler.Health)
	router.Get("/ready", handler.Ready)

	// API routes (tenant required)
	router.Route("/", func(r chi.Router) {
		r.Use(TenantMiddleware)

		// Tradeline analysis
		r.Post("/analyze", handler.Analyze)
		r.Post("/analyze/async", handler.AnalyzeAsync)

		// Stored artifacts
		r.Get("/reports/{id}", handler.GetReport)
		r.Get("/tradelines/{id}", handler.GetTradeline)

		// Standalone pipeline stages
		r.Post("/reconcile", handler.Reconcile)
		r.Post("/damages", handler.Damages)
		r.Post("/impact", handler.Impact)

		// Built-in catalogs
		r.Get("/rules", handler.ListRules)
		r.Get("/rules/{id}", handler.GetRule)
		r.Get("/patterns", handler.ListPatterns)

		// Custom rule management
		r.Post("/rules/custom", handler.CreateCustomRule)
		r.Get("/rules/custom", handler.ListCustomRules)
		r.Get("/rules/custom/{id}", handler.GetCustomRule)
		r.Delete("/rules/custom/{id}", handler.DeleteCustomRule)
		r.Post("/rules/custom/reload", handler.ReloadCustomRules)
	})

	return &Server{
		router:  router,
		handler: handler,
		config:  cfg,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the Chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Handler returns the handler for testing.
func (s *Server) Handler() *Handler {
	return s.handler
}
