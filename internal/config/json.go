package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

var errJSONType = errors.New("unexpected json type")

// jsonBinding copies the value at a gjson path into a config field. Missing
// paths and nulls leave the field zero.
type jsonBinding struct {
	path string
	set  func(cfg *StructuredConfig, v gjson.Result) error
}

// jsonBindings is the layout of the JSON config file. Durations accept Go
// duration strings ("30s") or integer nanoseconds.
var jsonBindings = []jsonBinding{
	bindString("app.password_hash_key", func(c *StructuredConfig) *string { return &c.App.PasswordHashKey }),
	bindString("app.token_sign_key", func(c *StructuredConfig) *string { return &c.App.TokenSignKey }),
	bindString("app.token_issuer", func(c *StructuredConfig) *string { return &c.App.TokenIssuer }),
	bindDuration("app.token_duration", func(c *StructuredConfig) *time.Duration { return &c.App.TokenDuration }),
	bindString("app.version", func(c *StructuredConfig) *string { return &c.App.Version }),
	bindString("app.log_file", func(c *StructuredConfig) *string { return &c.App.LogFile }),

	bindString("storage.db.dsn", func(c *StructuredConfig) *string { return &c.Storage.DB.DSN }),
	bindString("storage.shared.dir", func(c *StructuredConfig) *string { return &c.Storage.Shared.Dir }),

	bindString("server.http_address", func(c *StructuredConfig) *string { return &c.Server.HTTPAddress }),
	bindDuration("server.request_timeout", func(c *StructuredConfig) *time.Duration { return &c.Server.RequestTimeout }),
	bindInt("server.max_payload_bytes", func(c *StructuredConfig) *int64 { return &c.Server.MaxPayloadBytes }),

	bindString("adapter.http_address", func(c *StructuredConfig) *string { return &c.Adapter.HTTPAddress }),
	bindDuration("adapter.request_timeout", func(c *StructuredConfig) *time.Duration { return &c.Adapter.RequestTimeout }),

	bindDuration("sync.debounce_delay", func(c *StructuredConfig) *time.Duration { return &c.Sync.DebounceDelay }),
	bindDuration("sync.min_load_interval", func(c *StructuredConfig) *time.Duration { return &c.Sync.MinLoadInterval }),
	bindInt("sync.max_attempts", func(c *StructuredConfig) *int { return &c.Sync.MaxAttempts }),
	bindDuration("sync.retry_initial_interval", func(c *StructuredConfig) *time.Duration { return &c.Sync.RetryInitialInterval }),
	bindDuration("sync.retry_max_interval", func(c *StructuredConfig) *time.Duration { return &c.Sync.RetryMaxInterval }),

	bindString("auth.login", func(c *StructuredConfig) *string { return &c.Auth.Login }),
	bindString("auth.password", func(c *StructuredConfig) *string { return &c.Auth.Password }),
	bindBool("auth.register", func(c *StructuredConfig) *bool { return &c.Auth.Register }),
	bindDuration("auth.refresh_leeway", func(c *StructuredConfig) *time.Duration { return &c.Auth.RefreshLeeway }),

	bindDuration("workers.pull_interval", func(c *StructuredConfig) *time.Duration { return &c.Workers.PullInterval }),
	bindDuration("workers.watch_debounce", func(c *StructuredConfig) *time.Duration { return &c.Workers.WatchDebounce }),
	bindString("workers.metrics_address", func(c *StructuredConfig) *string { return &c.Workers.MetricsAddress }),
}

// parseJSON reads a config layer from the file at path. The file never names
// another config file, so JSONFilePath stays empty.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("error decoding json configs: %s is not valid JSON", path)
	}

	cfg := &StructuredConfig{}
	var errs []error
	for _, b := range jsonBindings {
		v := gjson.GetBytes(data, b.path)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if err := b.set(cfg, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.path, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return cfg, nil
}

func bindString(path string, field func(*StructuredConfig) *string) jsonBinding {
	return jsonBinding{path: path, set: func(c *StructuredConfig, v gjson.Result) error {
		if v.Type != gjson.String {
			return fmt.Errorf("%w: want string, got %s", errJSONType, v.Type)
		}
		*field(c) = v.Str
		return nil
	}}
}

func bindBool(path string, field func(*StructuredConfig) *bool) jsonBinding {
	return jsonBinding{path: path, set: func(c *StructuredConfig, v gjson.Result) error {
		if v.Type != gjson.True && v.Type != gjson.False {
			return fmt.Errorf("%w: want bool, got %s", errJSONType, v.Type)
		}
		*field(c) = v.Bool()
		return nil
	}}
}

func bindInt[T int | int64](path string, field func(*StructuredConfig) *T) jsonBinding {
	return jsonBinding{path: path, set: func(c *StructuredConfig, v gjson.Result) error {
		n, err := wholeNumber(v)
		if err != nil {
			return err
		}
		*field(c) = T(n)
		return nil
	}}
}

func bindDuration(path string, field func(*StructuredConfig) *time.Duration) jsonBinding {
	return jsonBinding{path: path, set: func(c *StructuredConfig, v gjson.Result) error {
		if v.Type == gjson.String {
			d, err := time.ParseDuration(v.Str)
			if err != nil {
				return err
			}
			*field(c) = d
			return nil
		}
		n, err := wholeNumber(v)
		if err != nil {
			return err
		}
		*field(c) = time.Duration(n)
		return nil
	}}
}

func wholeNumber(v gjson.Result) (int64, error) {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, fmt.Errorf("%w: want integer, got %s", errJSONType, v.Raw)
	}
	return v.Int(), nil
}
