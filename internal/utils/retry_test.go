package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func fastRetrier(attempts int) *Retrier {
	return NewRetrier(RetryPolicy{
		MaxAttempts:     attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     4 * time.Millisecond,
	}, logger.Nop())
}

// ── NewRetrier ────────────────────────────────────────────────────────────────

func TestNewRetrier_Defaults(t *testing.T) {
	r := NewRetrier(RetryPolicy{}, logger.Nop())
	assert.Equal(t, DefaultRetryPolicy(), r.policy)
}

func TestNewRetrier_MaxBelowInitial(t *testing.T) {
	r := NewRetrier(RetryPolicy{MaxAttempts: 2, InitialInterval: time.Second, MaxInterval: time.Millisecond}, logger.Nop())
	assert.Equal(t, time.Second, r.policy.MaxInterval)
}

// ── Run ───────────────────────────────────────────────────────────────────────

func TestRun_SucceedsFirstTime(t *testing.T) {
	calls := 0
	err := fastRetrier(3).Run(context.Background(), "syncAll", func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRun_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := fastRetrier(3).Run(context.Background(), "syncAll", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRun_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := fastRetrier(3).Run(context.Background(), "loadAll", func(ctx context.Context) error {
		calls++
		return errTransient
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errTransient)
	assert.Contains(t, err.Error(), "loadAll")
	assert.Equal(t, 3, calls)
}

func TestRun_SingleAttempt(t *testing.T) {
	calls := 0
	err := fastRetrier(1).Run(context.Background(), "once", func(ctx context.Context) error {
		calls++
		return errTransient
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRun_PermanentStopsImmediately(t *testing.T) {
	calls := 0
	err := fastRetrier(3).Run(context.Background(), "syncAll", func(ctx context.Context) error {
		calls++
		return Permanent(errTransient)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestRun_ContextCancelledDuringWait(t *testing.T) {
	r := NewRetrier(RetryPolicy{MaxAttempts: 3, InitialInterval: time.Hour, MaxInterval: time.Hour}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, "syncAll", func(ctx context.Context) error {
			calls++
			cancel()
			return errTransient
		})
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

// Ожидания между попытками растут вдвое и упираются в MaxInterval.
func TestNewBackOff_Schedule(t *testing.T) {
	r := NewRetrier(DefaultRetryPolicy(), logger.Nop())
	b := r.newBackOff()
	b.Reset()

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 8 * time.Second}
	for i, w := range want {
		assert.Equal(t, w, b.NextBackOff(), "wait %d", i+1)
	}
}

// ── Permanent ─────────────────────────────────────────────────────────────────

func TestPermanent(t *testing.T) {
	assert.NoError(t, Permanent(nil))
	assert.True(t, IsPermanent(Permanent(errTransient)))
	assert.False(t, IsPermanent(errTransient))
	assert.ErrorIs(t, Permanent(errTransient), errTransient)
}
