package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/domains"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/metrics"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

const (
	labelSyncAll = "syncAll"
	labelLoadAll = "loadAll"
)

// syncCoordinator implements [ClientSyncCoordinator].
//
// Every field below mu is guarded by it. Network calls, retry waits and
// domain codecs run without the lock.
type syncCoordinator struct {
	registry *domains.Registry
	adapter  adapter.ServerAdapter
	auth     AuthProvider
	retrier  *utils.Retrier
	clock    clock.WithDelayedExecution
	logger   *logger.Logger

	debounceDelay   time.Duration
	minLoadInterval time.Duration

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu                   sync.Mutex
	closed               bool
	debounceTimer        clock.Timer
	debounceArmed        bool
	debounceGeneration   uint64
	lastSyncDate         *time.Time
	lastLoadAttemptAt    *time.Time
	isApplyingRemoteData bool
	isEncodingLocalData  bool
	pushInFlight         bool
	pushPending          bool
	loadInFlight         bool
	loadPending          bool
	loadPendingForce     bool
}

// NewClientSyncCoordinator wires the coordinator. Zero durations in cfg
// fall back to the package defaults of config.
func NewClientSyncCoordinator(
	registry *domains.Registry,
	serverAdapter adapter.ServerAdapter,
	auth AuthProvider,
	clk clock.WithDelayedExecution,
	cfg config.ClientSync,
	log *logger.Logger,
) ClientSyncCoordinator {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = config.DefaultDebounceDelay
	}
	if cfg.MinLoadInterval <= 0 {
		cfg.MinLoadInterval = config.DefaultMinLoadInterval
	}

	retrier := utils.NewRetrier(utils.RetryPolicy{
		MaxAttempts:     cfg.MaxAttempts,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
	}, log)

	baseCtx, cancel := context.WithCancel(context.Background())

	return &syncCoordinator{
		registry:        registry,
		adapter:         serverAdapter,
		auth:            auth,
		retrier:         retrier,
		clock:           clk,
		logger:          log,
		debounceDelay:   cfg.DebounceDelay,
		minLoadInterval: cfg.MinLoadInterval,
		baseCtx:         baseCtx,
		cancel:          cancel,
	}
}

func (c *syncCoordinator) RequestSync() {
	if _, _, ok := c.credentials(); !ok {
		c.logger.Debug().Str("func", "syncCoordinator.RequestSync").Msg("no signed-in user, sync request ignored")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// writes made by Apply or by a migrating Encode are not user edits
	if c.isApplyingRemoteData || c.isEncodingLocalData {
		return
	}
	c.scheduleLocked()
}

func (c *syncCoordinator) SyncAllDebounced() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scheduleLocked()
}

// scheduleLocked remembers a push for the running pass or (re)arms the
// debounce timer.
func (c *syncCoordinator) scheduleLocked() {
	if c.closed {
		return
	}
	if c.pushInFlight {
		c.pushPending = true
		return
	}

	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
	}
	c.debounceGeneration++
	gen := c.debounceGeneration
	c.debounceArmed = true

	// the fake clock runs callbacks under its own lock, so do nothing here
	// but hand off
	c.debounceTimer = c.clock.AfterFunc(c.debounceDelay, func() {
		go c.fireDebounce(gen)
	})
}

func (c *syncCoordinator) fireDebounce(gen uint64) {
	c.mu.Lock()
	if c.closed || !c.debounceArmed || gen != c.debounceGeneration {
		c.mu.Unlock()
		return
	}
	c.debounceArmed = false
	c.debounceTimer = nil
	c.mu.Unlock()

	c.SyncAll(c.baseCtx)
}

// cancelDebounceLocked disarms the timer; a callback already on its way
// is dropped by the generation check.
func (c *syncCoordinator) cancelDebounceLocked() {
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
		c.debounceTimer = nil
	}
	if c.debounceArmed {
		c.debounceArmed = false
		c.debounceGeneration++
	}
}

func (c *syncCoordinator) FlushPending(ctx context.Context) bool {
	c.mu.Lock()
	armed := c.debounceArmed && !c.closed
	c.mu.Unlock()

	if armed {
		c.SyncAll(ctx)
	}
	return armed
}

func (c *syncCoordinator) SyncAll(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.pushInFlight {
		c.pushPending = true
		c.mu.Unlock()
		return
	}
	c.pushInFlight = true
	// this pass covers whatever the timer would have pushed
	c.cancelDebounceLocked()
	c.wg.Add(1)
	c.mu.Unlock()
	defer c.wg.Done()

	ctx, stop := c.bindToBase(ctx)
	defer stop()

	for {
		c.pushAll(ctx)

		c.mu.Lock()
		if !c.pushPending || c.closed {
			c.pushInFlight = false
			c.pushPending = false
			c.mu.Unlock()
			return
		}
		c.pushPending = false
		c.mu.Unlock()
	}
}

// pushAll runs one push pass: every domain in registry order inside one
// retry invocation.
func (c *syncCoordinator) pushAll(ctx context.Context) {
	log := c.logger.With().Str("func", "syncCoordinator.pushAll").Logger()

	if _, _, ok := c.credentials(); !ok {
		log.Debug().Msg("no signed-in user, push skipped")
		return
	}

	c.auth.RefreshIfNeeded(ctx)
	userID, token, ok := c.credentials()
	if !ok {
		log.Debug().Msg("session ended during refresh, push skipped")
		return
	}

	started := c.clock.Now()
	err := c.retrier.Run(ctx, labelSyncAll, func(ctx context.Context) error {
		for _, d := range c.registry.Domains() {
			payload := c.encodeLocal(ctx, d)
			if len(payload) == 0 {
				metrics.IncDomainSkipped(metrics.DirectionPush, d.ID())
				continue
			}

			if err := c.adapter.Upsert(ctx, userID, d.ID(), payload, token); err != nil {
				return fmt.Errorf("upsert %s: %w", d.ID(), err)
			}
		}
		return nil
	})

	finished := c.clock.Now()
	if err != nil {
		metrics.ObserveSyncPass(metrics.DirectionPush, metrics.ResultExhausted, finished.Sub(started))
		log.Error().Err(err).Str("label", labelSyncAll).Int64("user_id", userID).Msg("push pass failed")
		return
	}

	c.mu.Lock()
	c.lastSyncDate = &finished
	c.mu.Unlock()

	metrics.ObserveSyncPass(metrics.DirectionPush, metrics.ResultSuccess, finished.Sub(started))
	log.Debug().Int64("user_id", userID).Dur("took", finished.Sub(started)).Msg("push pass finished")
}

func (c *syncCoordinator) LoadAll(ctx context.Context, force bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.loadInFlight {
		c.loadPending = true
		c.loadPendingForce = c.loadPendingForce || force
		c.mu.Unlock()
		return
	}
	c.loadInFlight = true
	c.wg.Add(1)
	c.mu.Unlock()
	defer c.wg.Done()

	ctx, stop := c.bindToBase(ctx)
	defer stop()

	for {
		c.pullAll(ctx, force)

		c.mu.Lock()
		if !c.loadPending || c.closed {
			c.loadInFlight = false
			c.loadPending = false
			c.loadPendingForce = false
			c.mu.Unlock()
			return
		}
		force = c.loadPendingForce
		c.loadPending = false
		c.loadPendingForce = false
		c.mu.Unlock()
	}
}

// pullAll runs one pull pass. Fetch failures fail the attempt; apply
// failures only skip the domain.
func (c *syncCoordinator) pullAll(ctx context.Context, force bool) {
	log := c.logger.With().Str("func", "syncCoordinator.pullAll").Logger()

	if _, _, ok := c.credentials(); !ok {
		log.Debug().Msg("no signed-in user, pull skipped")
		return
	}

	c.mu.Lock()
	now := c.clock.Now()
	if !force && c.lastLoadAttemptAt != nil && now.Sub(*c.lastLoadAttemptAt) < c.minLoadInterval {
		last := *c.lastLoadAttemptAt
		c.mu.Unlock()
		log.Debug().Time("last_attempt", last).Msg("pull throttled")
		return
	}
	c.lastLoadAttemptAt = &now
	c.mu.Unlock()

	c.auth.RefreshIfNeeded(ctx)
	userID, token, ok := c.credentials()
	if !ok {
		log.Debug().Msg("session ended during refresh, pull skipped")
		return
	}

	err := c.retrier.Run(ctx, labelLoadAll, func(ctx context.Context) error {
		for _, d := range c.registry.Domains() {
			payload, err := c.fetch(ctx, userID, d, token)
			if err != nil {
				return err
			}
			if payload.IsEmpty() {
				metrics.IncDomainSkipped(metrics.DirectionPull, d.ID())
				continue
			}

			c.applyRemote(ctx, d, payload)
		}
		return nil
	})

	finished := c.clock.Now()
	if err != nil {
		metrics.ObserveSyncPass(metrics.DirectionPull, metrics.ResultExhausted, finished.Sub(now))
		log.Error().Err(err).Str("label", labelLoadAll).Int64("user_id", userID).Msg("pull pass failed")
		return
	}

	c.mu.Lock()
	c.lastSyncDate = &finished
	c.mu.Unlock()

	metrics.ObserveSyncPass(metrics.DirectionPull, metrics.ResultSuccess, finished.Sub(now))
	log.Debug().Int64("user_id", userID).Dur("took", finished.Sub(now)).Msg("pull pass finished")
}

// fetch tries the canonical id, then each legacy id. The first non-empty
// payload wins.
func (c *syncCoordinator) fetch(ctx context.Context, userID int64, d domains.Domain, token string) (models.Payload, error) {
	for _, id := range domains.RemoteIDs(d) {
		payload, err := c.adapter.Fetch(ctx, userID, id, token)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", id, err)
		}
		if !payload.IsEmpty() {
			if id != d.ID() {
				c.logger.Debug().
					Str("func", "syncCoordinator.fetch").
					Str("domain", d.ID()).
					Str("remote_id", id).
					Msg("using legacy remote id")
			}
			return payload, nil
		}
	}
	return nil, nil
}

// applyRemote writes payload through d with the anti-echo flag raised, so
// the local writes it causes do not schedule a push.
func (c *syncCoordinator) applyRemote(ctx context.Context, d domains.Domain, payload models.Payload) {
	if err := c.withGuard(&c.isApplyingRemoteData, func() error { return d.Apply(ctx, payload) }); err != nil {
		c.logApplyFailure(d, payload, err)
	}
}

// encodeLocal runs d.Encode with the encode guard raised. A domain that
// migrates legacy local keys while encoding would otherwise schedule a
// second push of the whole registry.
func (c *syncCoordinator) encodeLocal(ctx context.Context, d domains.Domain) models.Payload {
	var payload models.Payload
	_ = c.withGuard(&c.isEncodingLocalData, func() error {
		payload = d.Encode(ctx)
		return nil
	})
	return payload
}

// withGuard raises flag for the duration of fn. The flag is lowered even
// when fn panics.
func (c *syncCoordinator) withGuard(flag *bool, fn func() error) error {
	c.mu.Lock()
	*flag = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		*flag = false
		c.mu.Unlock()
	}()

	return fn()
}

func (c *syncCoordinator) logApplyFailure(d domains.Domain, payload models.Payload, err error) {
	metrics.IncDomainSkipped(metrics.DirectionPull, d.ID())
	event := c.logger.Error()
	if errors.Is(err, domains.ErrShapeMismatch) {
		event = c.logger.Warn()
	}
	event.Err(err).
		Str("func", "syncCoordinator.applyRemote").
		Str("domain", d.ID()).
		Int("payload_bytes", len(payload)).
		Msg("remote payload not applied")
}

func (c *syncCoordinator) Status() models.SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := models.SyncStatus{
		IsSyncing: c.debounceArmed || c.pushInFlight || c.loadInFlight,
	}
	if c.lastSyncDate != nil {
		last := *c.lastSyncDate
		status.LastSyncDate = &last
	}
	return status
}

func (c *syncCoordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelDebounceLocked()
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// credentials returns the user and token to sync with. ok is false when
// either is missing.
func (c *syncCoordinator) credentials() (int64, string, bool) {
	userID, ok := c.auth.CurrentUser()
	if !ok {
		return 0, "", false
	}
	token := c.auth.AccessToken()
	return userID, token, token != ""
}

// bindToBase derives a context that also ends when the coordinator closes.
func (c *syncCoordinator) bindToBase(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	stopAfter := context.AfterFunc(c.baseCtx, cancel)
	return ctx, func() {
		stopAfter()
		cancel()
	}
}
