// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// check is one validation rule: when bad holds, the config is rejected with
// group wrapping the field description.
type check struct {
	bad   bool
	group error
	field string
}

// firstFailure returns the first failing rule as "<group>: <field>".
func firstFailure(checks ...check) error {
	for _, c := range checks {
		if c.bad {
			return fmt.Errorf("%w: %s", c.group, c.field)
		}
	}
	return nil
}

// validate checks invariants shared by every view of the merged
// [StructuredConfig]. View-specific rules live on [ClientConfig] and
// [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	return firstFailure(
		check{cfg.Sync.MaxAttempts < 0, ErrInvalidSyncConfigs, "negative max attempts"},
	)
}

func (cfg *ClientConfig) validate() error {
	s, a := cfg.Sync, cfg.Auth
	dsn := cfg.Storage.DB.DSN

	return firstFailure(
		check{dsn == "", ErrInvalidStorageConfigs, "empty dsn"},
		// every pooled connection to ":memory:" is a separate empty database
		check{strings.Contains(dsn, "memory"), ErrInvalidStorageConfigs, "in-memory dsn"},
		check{cfg.Adapter.HTTPAddress == "", ErrInvalidAdapterConfigs, "empty remote address"},
		check{cfg.Adapter.RequestTimeout <= 0, ErrInvalidAdapterConfigs, "non-positive request timeout"},
		check{s.DebounceDelay <= 0, ErrInvalidSyncConfigs, "non-positive debounce delay"},
		check{s.MinLoadInterval < 0, ErrInvalidSyncConfigs, "negative min load interval"},
		check{s.MaxAttempts < 1, ErrInvalidSyncConfigs, "max attempts below 1"},
		check{s.RetryInitialInterval <= 0, ErrInvalidSyncConfigs, "non-positive retry interval"},
		check{s.RetryMaxInterval < s.RetryInitialInterval, ErrInvalidSyncConfigs, "retry max interval below initial"},
		check{(a.Login == "") != (a.Password == ""), ErrInvalidAuthConfigs, "login and password must be set together"},
		check{a.Register && a.Login == "", ErrInvalidAuthConfigs, "register without login"},
		check{a.RefreshLeeway < 0, ErrInvalidAuthConfigs, "negative refresh leeway"},
		check{cfg.Workers.PullInterval <= 0, ErrInvalidWorkerConfigs, "non-positive pull interval"},
		check{cfg.Workers.WatchDebounce <= 0, ErrInvalidWorkerConfigs, "non-positive watch debounce"},
	)
}

func (cfg *ServerConfig) validate() error {
	srv := cfg.Server

	return firstFailure(
		check{cfg.Storage.DB.DSN == "", ErrInvalidStorageConfigs, "empty dsn"},
		check{srv.HTTPAddress == "", ErrInvalidServerConfigs, "empty listen address"},
		check{srv.RequestTimeout <= 0, ErrInvalidServerConfigs, "non-positive request timeout"},
		check{srv.MaxPayloadBytes <= 0, ErrInvalidServerConfigs, "non-positive max payload"},
		check{cfg.App.TokenSignKey == "", ErrInvalidAppConfigs, "empty token sign key"},
		check{cfg.App.TokenDuration <= 0, ErrInvalidAppConfigs, "non-positive token duration"},
	)
}
