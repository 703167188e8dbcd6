// Package config builds the client and server configuration from layered
// sources. Environment variables are read first, command-line flags override
// them and a JSON file named by -c or CONFIG overrides both. Whatever is still
// zero takes the value from defaults.go before validation runs.
//
// Use [GetClientConfig] or [GetServerConfig]; both return a validated view
// of the merged [StructuredConfig].
package config
