// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// DependencyInterface is a remote component the service cannot work without
type DependencyInterface interface {
	Ping(ctx context.Context) error
}
