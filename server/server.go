// Package server exposes a GraphStore over HTTP so a browser front end can drive the
// editor: one JSON endpoint per store operation, plus health and metrics.
//
// The store is not safe for concurrent use; Server serializes every operation with
// a mutex.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/digraph/editor"
	"github.com/katalvlaran/digraph/metrics"
)

// Server binds one GraphStore to an HTTP router.
type Server struct {
	mu    sync.Mutex
	store *editor.GraphStore

	log            *zap.Logger
	metrics        *metrics.Collector
	allowedOrigins []string

	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics instruments requests and serves GET /metrics from c.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) { s.metrics = c }
}

// WithAllowedOrigins restricts CORS to origins (default: any origin).
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.allowedOrigins = append([]string(nil), origins...) }
}

// New returns a Server for store. A nil logger disables logging.
func New(store *editor.GraphStore, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		store: store,
		log:   logger.Named("http"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Timeouts bounds the lifetime of requests and of the shutdown.
type Timeouts struct {
	Read     time.Duration
	Write    time.Duration
	Shutdown time.Duration
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
// within t.Shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string, t Timeouts) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       t.Read,
		ReadHeaderTimeout: t.Read,
		WriteTimeout:      t.Write,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), t.Shutdown)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
