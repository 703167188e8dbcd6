package workers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/domains"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/metrics"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/watcher"
)

const metricsShutdownTimeout = 5 * time.Second

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// NewClientWorkers assembles the background workers of the sync client:
// the periodic pull job, the shared store watcher when mirroring is on and
// the metrics endpoint when an address is configured.
func NewClientWorkers(services *service.ClientServices, storages *store.ClientStorages, cfg config.ClientWorkers, clk clock.Clock, logger *logger.Logger) (*Workers, error) {
	list := []Worker{NewPullWorker(services.PullJob, cfg.PullInterval)}

	if storages.Shared != nil {
		w, err := watcher.NewSharedWatcher(storages.Shared, storages.Gateway, domains.LocalKeys(), clk, cfg.WatchDebounce, logger)
		if err != nil {
			return nil, fmt.Errorf("create shared watcher: %w", err)
		}
		list = append(list, w)
	}

	if cfg.MetricsAddress != "" {
		list = append(list, NewMetricsWorker(cfg.MetricsAddress, logger))
	}

	return NewWorkers(logger, list...), nil
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil {
		w.logger.Err(err).Str("func", "*Workers.Run").Msg("worker stopped with error")
	}
	return err
}

// NewPullWorker runs job for as long as the worker context lives.
func NewPullWorker(job service.ClientPullJob, interval time.Duration) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		job.Start(ctx, interval)
		<-ctx.Done()
		job.Stop()
		return nil
	})
}

// NewMetricsWorker serves the prometheus registry on address.
func NewMetricsWorker(address string, logger *logger.Logger) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		listener, err := net.Listen("tcp", address)
		if err != nil {
			return fmt.Errorf("metrics listen on %s: %w", address, err)
		}
		return serveMetrics(ctx, listener, logger)
	})
}

func serveMetrics(ctx context.Context, listener net.Listener, logger *logger.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("address", listener.Addr().String()).Msg("metrics endpoint started")
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
