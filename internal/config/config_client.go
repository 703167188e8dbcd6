package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the client version reported in logs.
	Version string
	// LogFile is the path the client appends logs to. Empty means a "logs"
	// file next to the executable.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote store.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientShared contains the shared group store settings.
type ClientShared struct {
	// Dir is the shared directory. Empty disables mirroring.
	Dir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Shared holds the shared group store settings.
	Shared ClientShared
}

// ClientSync holds the sync coordinator policy.
type ClientSync struct {
	DebounceDelay        time.Duration
	MinLoadInterval      time.Duration
	MaxAttempts          int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
}

// ClientAuth holds optional credentials and the refresh leeway.
type ClientAuth struct {
	Login         string
	Password      string
	Register      bool
	RefreshLeeway time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PullInterval defines how often the background pull job runs.
	PullInterval time.Duration
	// WatchDebounce groups bursts of shared directory events.
	WatchDebounce time.Duration
	// MetricsAddress enables the metrics endpoint when non-empty.
	MetricsAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Auth    ClientAuth
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
			Shared: ClientShared{Dir: os.ExpandEnv(cfg.Storage.Shared.Dir)},
		},
		Sync: ClientSync{
			DebounceDelay:        cfg.Sync.DebounceDelay,
			MinLoadInterval:      cfg.Sync.MinLoadInterval,
			MaxAttempts:          cfg.Sync.MaxAttempts,
			RetryInitialInterval: cfg.Sync.RetryInitialInterval,
			RetryMaxInterval:     cfg.Sync.RetryMaxInterval,
		},
		Auth: ClientAuth{
			Login:         cfg.Auth.Login,
			Password:      cfg.Auth.Password,
			Register:      cfg.Auth.Register,
			RefreshLeeway: cfg.Auth.RefreshLeeway,
		},
		Workers: ClientWorkers{
			PullInterval:   cfg.Workers.PullInterval,
			WatchDebounce:  cfg.Workers.WatchDebounce,
			MetricsAddress: cfg.Workers.MetricsAddress,
		},
	}

	return clientCfg, clientCfg.validate()
}
