package server

import "errors"

// ErrNoHTTPHandler is returned by NewServer when there is nothing to serve:
// no HTTP handler was built or no listen address is configured.
var ErrNoHTTPHandler = errors.New("server: no http handler or listen address")
