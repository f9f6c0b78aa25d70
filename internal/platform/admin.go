// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/types"
)

// Admin is the service level handle, it never sees caller credentials
type Admin struct {
	identities IdentityAdminInterface
	data       DataAdminInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Admin) CreateUser(ctx context.Context, u *types.NewUser) (*types.CreatedUser, error) {
	ctx, span := a.tracer.Start(ctx, "platform.Admin.CreateUser")
	defer span.End()

	return a.identities.CreateUser(ctx, u)
}

func (a *Admin) UpdateProfileRole(ctx context.Context, userID, role string) error {
	ctx, span := a.tracer.Start(ctx, "platform.Admin.UpdateProfileRole")
	defer span.End()

	return a.data.UpdateProfileRole(ctx, userID, role)
}

func (a *Admin) InsertMembership(ctx context.Context, m *types.Membership) error {
	ctx, span := a.tracer.Start(ctx, "platform.Admin.InsertMembership")
	defer span.End()

	return a.data.InsertMembership(ctx, m)
}

func NewAdmin(identities IdentityAdminInterface, data DataAdminInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Admin {
	a := new(Admin)

	a.identities = identities
	a.data = data

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
