package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errAddressPort   = errors.New("port must be in 1..65535")
	errAddressHost   = errors.New("host must be empty, localhost or an IP address")
)

// NetAddress is a flag.Value for a listen address. The host may be empty to
// listen on every interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. Hostnames other than localhost are rejected so the
// server never binds to something that needs DNS.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %v", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errAddressPort, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q", errAddressHost, host)
	}

	a.Host, a.Port = host, port
	return nil
}

// ParseFlags parses command-line args into a config layer. Unset flags leave
// their fields zero so lower-priority sources show through. Both binaries
// share the flag set; each ignores the keys it does not use.
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var listen NetAddress

	fs := flag.NewFlagSet("go-study-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	// app
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&cfg.App.PasswordHashKey, "password-hash-key", "", "Password pepper")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token lifetime, e.g. 1h")

	// storage
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Shared.Dir, "shared-dir", "", "Shared group directory")

	// server
	fs.Var(&listen, "a", "Server listen address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Server request timeout")
	fs.Int64Var(&cfg.Server.MaxPayloadBytes, "max-payload-bytes", 0, "Largest accepted payload")

	// client
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "Remote store address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.DurationVar(&cfg.Sync.DebounceDelay, "debounce", 0, "Push debounce delay")
	fs.DurationVar(&cfg.Sync.MinLoadInterval, "min-load-interval", 0, "Pull throttle interval")
	fs.IntVar(&cfg.Sync.MaxAttempts, "max-attempts", 0, "Attempts per sync pass")
	fs.StringVar(&cfg.Auth.Login, "login", "", "Account login")
	fs.StringVar(&cfg.Auth.Password, "password", "", "Account password")
	fs.BoolVar(&cfg.Auth.Register, "register", false, "Register the account instead of logging in")
	fs.DurationVar(&cfg.Workers.PullInterval, "pull-interval", 0, "Background pull period")
	fs.StringVar(&cfg.Workers.MetricsAddress, "metrics-address", "", "Client metrics listen address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = listen.String()

	return cfg, nil
}
