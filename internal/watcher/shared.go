package watcher

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
)

// SharedWatcher watches the shared group store directory. Keys touched
// within one debounce window are imported together once the directory
// goes quiet. Imports that change the primary store notify the gateway
// listeners, which is how a sync gets requested.
type SharedWatcher struct {
	shared   store.SharedStore
	gateway  store.LocalStateGateway
	clock    clock.Clock
	debounce time.Duration
	logger   *logger.Logger

	keys    map[string]struct{}
	pending map[string]struct{}
}

// NewSharedWatcher watches the given keys only; files of other keys in
// the directory are ignored. It returns [ErrNoSharedStore] when shared is
// nil.
func NewSharedWatcher(shared store.SharedStore, gateway store.LocalStateGateway, keys []string, clk clock.Clock, debounce time.Duration, logger *logger.Logger) (*SharedWatcher, error) {
	if shared == nil {
		return nil, ErrNoSharedStore
	}

	watched := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		watched[key] = struct{}{}
	}

	return &SharedWatcher{
		shared:   shared,
		gateway:  gateway,
		clock:    clk,
		debounce: debounce,
		logger:   logger.WithComponent("shared-watcher"),
		keys:     watched,
		pending:  make(map[string]struct{}),
	}, nil
}

// Run blocks until ctx is done or the watcher fails. Values written while
// the client was not running are imported once the watch is in place.
func (w *SharedWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err = fsw.Add(w.shared.Dir()); err != nil {
		return fmt.Errorf("watch %s: %w", w.shared.Dir(), err)
	}

	w.logger.Info().Str("dir", w.shared.Dir()).Msg("watching shared store")

	for key := range w.keys {
		w.pending[key] = struct{}{}
	}
	w.flush(ctx)

	return w.loop(ctx, fsw.Events, fsw.Errors)
}

func (w *SharedWatcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	var (
		timer clock.Timer
		fireC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !w.track(event) {
				continue
			}
			if timer == nil {
				timer = w.clock.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fireC = timer.C()

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("fsnotify error")

		case <-fireC:
			fireC = nil
			w.flush(ctx)
		}
	}
}

// track records the key behind a create or write event. It reports
// whether the event was one of ours to handle.
func (w *SharedWatcher) track(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}

	key, ok := w.shared.KeyForPath(event.Name)
	if !ok {
		return false
	}
	if _, watched := w.keys[key]; !watched {
		return false
	}

	w.pending[key] = struct{}{}
	return true
}

func (w *SharedWatcher) flush(ctx context.Context) {
	keys := make([]string, 0, len(w.pending))
	for key := range w.pending {
		keys = append(keys, key)
	}
	clear(w.pending)
	slices.Sort(keys)

	for _, key := range keys {
		changed, err := w.gateway.ImportShared(ctx, key)
		if err != nil {
			w.logger.Err(err).Str("key", key).Msg("import shared blob failed")
			continue
		}
		if changed {
			w.logger.Debug().Str("key", key).Msg("shared blob imported")
		}
	}
}
