// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"

	"github.com/canonical/team-member-service/internal/types"
)

type ServiceInterface interface {
	CheckConfiguration(ctx context.Context) error
	AuthorizeCaller(ctx context.Context, credential string) (string, error)
	CreateTeamMember(ctx context.Context, callerID string, member *types.NewMember) (*Outcome, error)
}

// CallerInterface is bound to the credential of the request issuer
type CallerInterface interface {
	UserID(ctx context.Context) (string, error)
	ProfileRole(ctx context.Context, userID string) (string, error)
}

// AdminInterface holds service level privileges and never acts with the caller's credential
type AdminInterface interface {
	CreateUser(ctx context.Context, u *types.NewUser) (*types.CreatedUser, error)
	UpdateProfileRole(ctx context.Context, userID, role string) error
	InsertMembership(ctx context.Context, membership *types.Membership) error
}

// CallerFactory returns the caller handle for a bearer credential, the credential may be empty
type CallerFactory func(credential string) CallerInterface
