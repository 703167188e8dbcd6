package client

import "errors"

var (
	ErrNoServices = errors.New("client services are not initialized")
	ErrNoWorkers  = errors.New("client workers are not initialized")
)
