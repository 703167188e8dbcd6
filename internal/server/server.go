package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/handler"
	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// shutdownTimeout bounds the wait for in-flight requests.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	listen     func() (net.Listener, error)
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerHTTP, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, ErrNoHTTPHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		listen: func() (net.Listener, error) {
			return net.Listen("tcp", cfg.HTTPAddress)
		},
		logger: logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	listener, err := s.listen()
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(listener)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
