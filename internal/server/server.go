// Package server exposes stored collections over a read-mostly HTTP API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/cristianoliveira/jobdeck/internal/config"
	"github.com/cristianoliveira/jobdeck/internal/logging"
	"github.com/cristianoliveira/jobdeck/internal/query"
	"github.com/cristianoliveira/jobdeck/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

// Config holds server configuration.
type Config struct {
	Addr        string
	Timeout     time.Duration
	CORSOrigins []string
	PageSize    int
	SearchMode  string
	// RateLimit is the request budget per second; zero disables limiting.
	RateLimit int
	RateBurst int
}

// ConfigFromGlobal builds the server configuration from the loaded settings.
func ConfigFromGlobal() Config {
	timeout, err := time.ParseDuration(config.Get("http_timeout", "30s"))
	if err != nil {
		timeout = 30 * time.Second
	}
	return Config{
		Addr:        config.Get("http_addr", ":8080"),
		Timeout:     timeout,
		CORSOrigins: config.GetList("cors_origins"),
		PageSize:    config.GetInt("page_size", query.DefaultPageSize),
		SearchMode:  config.Get("search_mode", ""),
		RateLimit:   config.GetInt("http_rate_limit", 0),
		RateBurst:   config.GetInt("http_rate_burst", 20),
	}
}

// Server represents the HTTP server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	store      storage.Store
	config     Config
	logger     logging.Logger
}

// New creates a server over store. A nil logger disables access logs.
func New(store storage.Store, cfg Config, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Noop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = query.DefaultPageSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = max(cfg.RateLimit, 1)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	s := &Server{
		router: chi.NewRouter(),
		store:  store,
		config: cfg,
		logger: logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(accessLog(s.logger))
	s.router.Use(middleware.Recoverer)
	if s.config.RateLimit > 0 {
		s.router.Use(rateLimit(rate.NewLimiter(rate.Limit(s.config.RateLimit), s.config.RateBurst), s.logger))
	}
	s.router.Use(middleware.Timeout(s.config.Timeout))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.health)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.stats)
		r.Route("/{kind}", func(r chi.Router) {
			r.Get("/", s.list)
			r.Get("/{id}", s.getItem)
			r.Post("/{id}/status", s.updateStatus)
		})
	})
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server listening", "addr", listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("http server shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
