// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoListenAddress stops startup when no transport has an address to serve.
var errNoListenAddress = errors.New("server has no listen address configured")
