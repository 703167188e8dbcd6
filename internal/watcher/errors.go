package watcher

import "errors"

// ErrNoSharedStore is returned by [NewSharedWatcher] when mirroring is
// disabled.
var ErrNoSharedStore = errors.New("shared store is not configured")
