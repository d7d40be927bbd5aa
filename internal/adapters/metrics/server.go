package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server exposes the global registry over HTTP for scraping
type Server struct {
	addr   string
	path   string
	logger zerolog.Logger
	server *http.Server
}

// NewServer creates a metrics endpoint listening on addr (host:port) at path
func NewServer(addr, path string, logger zerolog.Logger) *Server {
	if path == "" {
		path = "/metrics"
	}
	return &Server{
		addr:   addr,
		path:   path,
		logger: logger,
	}
}

// Start listens in the background. It fails if metrics are not enabled or
// the address is taken.
func (s *Server) Start() error {
	if Registry == nil {
		return fmt.Errorf("metrics registry is not initialized")
	}

	mux := http.NewServeMux()
	mux.Handle(s.path, promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry}))

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.addr = listener.Addr().String()
	s.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	s.logger.Info().Str("addr", s.addr).Str("path", s.path).Msg("metrics server listening")
	return nil
}

// Addr is the address being served, resolved once started
func (s *Server) Addr() string {
	return s.addr
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
