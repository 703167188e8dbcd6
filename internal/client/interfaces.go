// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Runner blocks running background work until ctx is done. The workers
// package satisfies it; so does [App] itself.
type Runner interface {
	Run(ctx context.Context) error
}

var _ Runner = (*App)(nil)
