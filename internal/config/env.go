// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// processEnviron returns the current process environment as a map suitable
// for parseEnv.
func processEnviron() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv builds a config layer from the given environment. Only variables
// named by `env`/`envPrefix` tags on [StructuredConfig] are read; everything
// else stays zero so the layer merges cleanly over flags and JSON.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
