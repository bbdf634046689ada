// Package board hosts the capability board HTTP surface.
package board

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/capabilityboard/internal/platform/timeouts"
	"github.com/louisbranch/capabilityboard/internal/services/board/app"
	"github.com/louisbranch/capabilityboard/internal/services/board/diagnostics"
	"github.com/louisbranch/capabilityboard/internal/services/board/platform/httpx"
	"github.com/louisbranch/capabilityboard/internal/services/board/platform/observability"
	"github.com/louisbranch/capabilityboard/internal/services/board/platform/requestmeta"
)

// Config defines startup inputs for the board service.
type Config struct {
	HTTPAddr string
	// Gateway reaches the external capability API.
	Gateway app.Gateway
	// Recorder receives terminal failures. Defaults to log-only.
	Recorder diagnostics.Recorder
	// UIErrorLimiter bounds browser error reports. Nil disables limiting.
	UIErrorLimiter *diagnostics.Limiter
	SchemePolicy   requestmeta.SchemePolicy
	Logger         *log.Logger
}

// Server hosts the board HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with its middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Gateway == nil {
		return nil, errors.New("capability gateway is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = diagnostics.NewRecorder(logger, nil)
	}

	h := &handlers{
		service:  app.NewService(cfg.Gateway, app.WithRecorder(recorder)),
		recorder: recorder,
		limiter:  cfg.UIErrorLimiter,
		policy:   cfg.SchemePolicy,
	}
	mux := http.NewServeMux()
	registerRoutes(mux, h)
	return httpx.Chain(mux,
		httpx.RecoverPanic(h.handlePanic),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a board server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose board handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("board server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown board http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve board http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
