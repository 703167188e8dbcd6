// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy controls how many times an operation is attempted and how long
// the Retrier waits between attempts. The wait before attempt n+1 is
// min(MaxInterval, InitialInterval*2^(n-1)), without jitter.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy returns 3 attempts with 1s, 2s waits capped at 8s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: time.Second,
		MaxInterval:     8 * time.Second,
	}
}

// Retrier runs a whole operation again when it fails. It knows nothing about
// what the operation does; a sync pass is retried from its first step.
type Retrier struct {
	policy RetryPolicy
	logger *logger.Logger
}

// NewRetrier creates a Retrier. Zero fields of policy fall back to
// [DefaultRetryPolicy].
func NewRetrier(policy RetryPolicy, log *logger.Logger) *Retrier {
	def := DefaultRetryPolicy()
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = def.MaxAttempts
	}
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = def.InitialInterval
	}
	if policy.MaxInterval < policy.InitialInterval {
		policy.MaxInterval = policy.InitialInterval
	}

	return &Retrier{policy: policy, logger: log}
}

// Run invokes op until it succeeds, the attempts are used up, op returns an
// error wrapped with [Permanent], or ctx is done. It returns the last error.
func (r *Retrier) Run(ctx context.Context, label string, op func(ctx context.Context) error) error {
	attempt := 0
	operation := func() (struct{}, error) {
		attempt++
		return struct{}{}, op(ctx)
	}

	notify := func(err error, wait time.Duration) {
		r.logger.Warn().
			Str("func", "Retrier.Run").
			Str("label", label).
			Int("attempt", attempt).
			Dur("wait", wait).
			Err(err).
			Msg("attempt failed, retrying")
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(r.newBackOff()),
		backoff.WithMaxTries(uint(r.policy.MaxAttempts)),
		backoff.WithNotify(notify),
	)
	if err != nil {
		r.logger.Error().
			Str("func", "Retrier.Run").
			Str("label", label).
			Int("attempt", attempt).
			Err(err).
			Msg("giving up")
		return fmt.Errorf("%s failed after %d attempt(s): %w", label, attempt, err)
	}

	return nil
}

func (r *Retrier) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.policy.InitialInterval
	b.MaxInterval = r.policy.MaxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	return b
}

// Permanent marks err so that the Retrier stops at once.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// IsPermanent reports whether err was marked with [Permanent].
func IsPermanent(err error) bool {
	var permanent *backoff.PermanentError
	return errors.As(err, &permanent)
}
