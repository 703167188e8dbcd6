package config

import (
	"fmt"
	"time"
)

// ServerApp holds token and password settings of the remote store server.
type ServerApp struct {
	PasswordHashKey string
	TokenSignKey    string
	TokenIssuer     string
	TokenDuration   time.Duration
	Version         string
}

// ServerHTTP holds the inbound HTTP settings.
type ServerHTTP struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	MaxPayloadBytes int64
}

// ServerStorage holds the PostgreSQL settings.
type ServerStorage struct {
	DB DB
}

// ServerConfig is the remote store server configuration view.
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

// GetServerConfig builds and validates the server-specific config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			PasswordHashKey: cfg.App.PasswordHashKey,
			TokenSignKey:    cfg.App.TokenSignKey,
			TokenIssuer:     cfg.App.TokenIssuer,
			TokenDuration:   cfg.App.TokenDuration,
			Version:         cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:     cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			MaxPayloadBytes: cfg.Server.MaxPayloadBytes,
		},
		Storage: ServerStorage{DB: cfg.Storage.DB},
	}

	return serverCfg, serverCfg.validate()
}
