// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It opens a session with the remote store, pulls remote state once,
// runs the background workers and, on shutdown, pushes whatever change
// was still waiting for its debounce.
package client
