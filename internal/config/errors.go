package config

import "errors"

// One sentinel per configuration group; validate wraps them with the
// offending field.
var (
	ErrInvalidAdapterConfigs = errors.New("adapter config")
	ErrInvalidStorageConfigs = errors.New("storage config")
	ErrInvalidAppConfigs     = errors.New("app config")
	ErrInvalidWorkerConfigs  = errors.New("workers config")
	ErrInvalidSyncConfigs    = errors.New("sync config")
	ErrInvalidAuthConfigs    = errors.New("auth config")
	ErrInvalidServerConfigs  = errors.New("server config")
)
