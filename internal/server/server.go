package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hopwhistle/internal/config"
	"github.com/MKhiriev/hopwhistle/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, errNoAddress
	}

	logger.Info().Str("address", cfg.Address).Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, cfg.Address, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts the
// server down gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error running HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return <-errCh
}
