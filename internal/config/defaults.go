package config

import "time"

// Default values applied to every field no source has set.
const (
	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultMaxPayloadBytes      = 1 << 20

	DefaultTokenIssuer   = "go-study-sync"
	DefaultTokenDuration = time.Hour
	DefaultVersion       = "dev"

	DefaultAdapterRequestTimeout = 10 * time.Second

	DefaultDebounceDelay        = 2 * time.Second
	DefaultMinLoadInterval      = 30 * time.Second
	DefaultMaxAttempts          = 3
	DefaultRetryInitialInterval = time.Second
	DefaultRetryMaxInterval     = 8 * time.Second

	DefaultRefreshLeeway = 5 * time.Minute

	DefaultPullInterval  = time.Minute
	DefaultWatchDebounce = 250 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			RequestTimeout:  DefaultServerRequestTimeout,
			MaxPayloadBytes: DefaultMaxPayloadBytes,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Sync: Sync{
			DebounceDelay:        DefaultDebounceDelay,
			MinLoadInterval:      DefaultMinLoadInterval,
			MaxAttempts:          DefaultMaxAttempts,
			RetryInitialInterval: DefaultRetryInitialInterval,
			RetryMaxInterval:     DefaultRetryMaxInterval,
		},
		Auth: Auth{
			RefreshLeeway: DefaultRefreshLeeway,
		},
		Workers: Workers{
			PullInterval:  DefaultPullInterval,
			WatchDebounce: DefaultWatchDebounce,
		},
	}
}
