// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/team-member-service/internal/types"
)

type StorageInterface interface {
	ProfileRole(ctx context.Context, credential, userID string) (string, error)
	UpdateProfileRole(ctx context.Context, userID, role string) error
	InsertMembership(ctx context.Context, m *types.Membership) error
}
