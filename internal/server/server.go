package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/storyflow/techguide/internal/registry"
	"github.com/storyflow/techguide/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves the guide as HTML pages and a small JSON API.
type Server struct {
	cfg        Config
	reg        *registry.Registry
	renderer   *site.Renderer
	search     []site.SearchEntry
	log        *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for reg. Section content is static, so the search
// index is built once here.
func New(cfg Config, reg *registry.Registry, renderer *site.Renderer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:      cfg,
		reg:      reg,
		renderer: renderer,
		search:   site.BuildSearchIndex(reg, site.ServerLinks),
		log:      log,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/style.css", s.handleAsset("text/css; charset=utf-8", site.Stylesheet()))
	r.Get("/script.js", s.handleAsset("application/javascript; charset=utf-8", site.Script()))
	r.Get("/search-index.json", s.handleSearchIndex)

	r.Get("/", s.handleIndex)
	r.Get("/sections/{slug}", s.handleSection)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleListSections)
		r.Get("/sections/{slug}", s.handleGetSection)
		r.Get("/search", s.handleSearch)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "page not found", http.StatusNotFound)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("techguide server listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
