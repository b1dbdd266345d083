package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
)

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 10 * time.Second

// Server is the HTTP front end of an engine.
type Server struct {
	srv     *http.Server
	metrics *Metrics
	logger  *slog.Logger
}

// New wires a Service, Controller and router for e. A nil logger discards.
func New(cfg config.ServerConfig, e *engine.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	metrics := NewMetrics()
	controller := NewController(NewService(e, metrics, logger), WithMaxBodyBytes(cfg.MaxBodyBytes))

	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(logger, metrics, controller),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "component", "server", "addr", s.srv.Addr)
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: listen %s: %w", s.srv.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	s.logger.Info("shutting down", "component", "server")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
