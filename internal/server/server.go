package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
	"github.com/ziadkadry99/ai-heroes/internal/logging"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the HTTP front of the gallery.
type Server struct {
	cfg        Config
	cat        *catalog.Catalog
	logger     *log.Logger
	router     chi.Router // root, without the request timeout
	routes     chi.Router // request/response routes, with the timeout
	httpServer *http.Server
}

// New creates a server over cat. A nil logger discards output.
func New(cfg Config, cat *catalog.Catalog, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		cfg:    cfg,
		cat:    cat,
		logger: logger,
	}

	s.router = s.buildRouter()
	s.routes = s.router.With(middleware.Timeout(requestTimeout))
	return s
}

// requestTimeout bounds ordinary requests. Streams are mounted outside it.
const requestTimeout = 60 * time.Second

// buildRouter creates and configures the chi router with the shared
// middleware and the health check.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)

	// Page, asset and API routes are registered by the web package.
	return r
}

type healthResponse struct {
	Status     string `json:"status"`
	Characters int    `json:"characters"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Characters: s.cat.Len()})
}

// Router returns the chi router for registering additional routes. Handlers
// registered here are cut off after the request timeout.
func (s *Server) Router() chi.Router { return s.routes }

// Handler returns the root handler serving every registered route.
func (s *Server) Handler() http.Handler { return s.router }

// Streams returns the router for long-lived connections such as
// WebSockets, which must not be cut off by the request timeout.
func (s *Server) Streams() chi.Router { return s.router }

// Addr returns the listen address for the configured port.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("heroes server listening", "addr", s.Addr())
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
