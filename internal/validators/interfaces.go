// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound users and domain records before the
// server services touch storage.
package validators

import "context"

// Validator checks obj and returns a sentinel from this package on the first
// violation. When fields are given only those fields are checked; an empty
// list checks everything the type has.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
