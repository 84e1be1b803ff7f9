package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Config struct {
	Addr              string        `envconfig:"ADDR" default:":8080"`
	RequestTimeout    time.Duration `split_words:"true" default:"30s"`
	ReadHeaderTimeout time.Duration `split_words:"true" default:"10s"`
	ShutdownTimeout   time.Duration `split_words:"true" default:"15s"`
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("server: addr is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("server: shutdown timeout must be positive")
	}
	return nil
}

type Server struct {
	Router *chi.Mux

	cfg    Config
	logger zerolog.Logger
	http   *http.Server
}

// New builds the router with request id, access log, panic recovery and
// tracing applied to every route. Request timeouts are left to route groups
// because streaming routes must outlive them.
func New(cfg Config, serviceName string, logger zerolog.Logger) *Server {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, serviceName)
	})

	s := &Server{
		Router: r,
		cfg:    cfg,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.cfg.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("shutting down server")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
