package service

import (
	"context"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
)

type clientPullJob struct {
	coordinator ClientSyncCoordinator
	clock       clock.WithTicker
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientPullJob creates a job that calls coordinator.LoadAll on a
// ticker. The job is idle until Start is called.
func NewClientPullJob(coordinator ClientSyncCoordinator, clk clock.WithTicker, logger *logger.Logger) ClientPullJob {
	return &clientPullJob{coordinator: coordinator, clock: clk, logger: logger}
}

// Start implements ClientPullJob. A non-positive interval falls back to
// the configured default. The pulls are not forced, so they respect the
// coordinator's minimum load interval.
func (j *clientPullJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultPullInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	ticker := j.clock.NewTicker(interval)

	go func() {
		defer j.wg.Done()
		defer ticker.Stop()

		j.logger.Debug().Str("func", "clientPullJob.Start").Dur("interval", interval).Msg("pull job started")

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C():
				j.coordinator.LoadAll(jobCtx, false)
			}
		}
	}()
}

// Stop implements ClientPullJob. Safe to call when the job is not running.
func (j *clientPullJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
