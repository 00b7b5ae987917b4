package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps handler in an HTTP server bound to cfg.HTTPAddress.
func NewServer(handler http.Handler, cfg config.DevServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	switch {
	case cfg.HTTPAddress == "":
		return nil, errNoAddress
	case handler == nil:
		return nil, errNoHandler
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return
	}

	if err := s.run(ctx, l); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves on l until ctx is done, then shuts the listener down and waits
// for in-flight requests.
func (s *server) run(ctx context.Context, l net.Listener) error {
	served := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.serve(l)
	}()

	select {
	case err := <-served:
		return fmt.Errorf("HTTP server stopped: %w", err)
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-served; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
