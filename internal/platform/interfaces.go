// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"

	"github.com/canonical/team-member-service/internal/types"
)

// ProfileReaderInterface reads profiles on behalf of the owner of a credential
type ProfileReaderInterface interface {
	ProfileRole(ctx context.Context, credential, userID string) (string, error)
}

// IdentityAdminInterface creates accounts with service level privileges
type IdentityAdminInterface interface {
	CreateUser(ctx context.Context, u *types.NewUser) (*types.CreatedUser, error)
}

// DataAdminInterface writes profiles and memberships with service level privileges
type DataAdminInterface interface {
	UpdateProfileRole(ctx context.Context, userID, role string) error
	InsertMembership(ctx context.Context, m *types.Membership) error
}
