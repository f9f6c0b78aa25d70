// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"
	"fmt"
	"slices"

	"github.com/canonical/team-member-service/internal/config"
	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/types"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

var privilegedRoles = []string{RoleAdmin, RoleSuperAdmin}

// RolePolicy restricts the roles that can be assigned to a new member.
// When Strict is false any role is stored as received.
type RolePolicy struct {
	Strict  bool
	Allowed []string
}

func (p RolePolicy) permits(role string) bool {
	return !p.Strict || slices.Contains(p.Allowed, role)
}

type Service struct {
	configErr error

	callers CallerFactory
	admin   AdminInterface
	policy  RolePolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CheckConfiguration(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "members.Service.CheckConfiguration")
	defer span.End()

	if s.configErr != nil {
		s.logger.Errorf("missing or invalid platform configuration: %v", s.configErr)
		return ErrConfiguration
	}

	return nil
}

// AuthorizeCaller resolves the principal behind credential and checks it holds a privileged role
func (s *Service) AuthorizeCaller(ctx context.Context, credential string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.AuthorizeCaller")
	defer span.End()

	caller := s.callers(credential)

	userID, err := caller.UserID(ctx)
	if err != nil || userID == "" {
		s.logger.Errorf("auth error: %v", err)
		s.logger.Security().AuthnFailure("caller could not be resolved")
		return "", ErrUnauthorized
	}

	s.logger.Debugf("current user: %s", userID)

	role, err := caller.ProfileRole(ctx, userID)
	if err != nil {
		s.logger.Errorf("permission error, failed to read caller role: %v", err)
		s.logger.Security().AuthzFailure(userID, "create-team-member")
		return "", ErrForbidden
	}

	if !slices.Contains(privilegedRoles, role) {
		s.logger.Errorf("permission error, user role: %q", role)
		s.logger.Security().AuthzFailure(userID, "create-team-member")
		return "", ErrForbidden
	}

	return userID, nil
}

// CreateTeamMember provisions the account, then records the profile role and the membership row.
// Only the account creation can fail the operation.
func (s *Service) CreateTeamMember(ctx context.Context, callerID string, member *types.NewMember) (*Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.CreateTeamMember")
	defer span.End()

	s.logger.Infof("creating user with email: %s role: %s", member.Email, member.Role)

	if !s.policy.permits(member.Role) {
		return nil, &RejectedError{Message: fmt.Sprintf("invalid role %q", member.Role)}
	}

	user, err := s.admin.CreateUser(
		ctx,
		&types.NewUser{
			Email:          member.Email,
			Password:       member.Password,
			EmailConfirmed: true,
			Metadata:       map[string]interface{}{"nome": member.Nome},
		},
	)
	if err != nil {
		s.logger.Errorf("error creating user: %v", err)
		return nil, newRejectedError(err)
	}

	s.logger.Infof("user created successfully: %s", user.ID)
	s.logger.Security().UserCreated(callerID, user.ID)

	outcome := &Outcome{User: user}

	if e := outcome.record(SideEffectProfileRole, s.admin.UpdateProfileRole(ctx, user.ID, member.Role)); e.Failed() {
		s.logger.Errorf("error updating profile role: %v", e.Err)
		s.countFailure(e)
	}

	membership := &types.Membership{
		UserID: user.ID,
		Nome:   member.Nome,
		Email:  member.Email,
		Role:   member.Role,
	}

	if e := outcome.record(SideEffectMembership, s.admin.InsertMembership(ctx, membership)); e.Failed() {
		s.logger.Errorf("error creating usuario entry: %v", e.Err)
		s.countFailure(e)
	}

	s.logger.Infow(
		"team member created successfully",
		"id", user.ID,
		"email", member.Email,
		"nome", member.Nome,
		"role", member.Role,
		"degraded", outcome.Degraded(),
	)

	return outcome, nil
}

func (s *Service) countFailure(e SideEffect) {
	if err := s.monitor.IncrementSideEffectFailure(map[string]string{"side_effect": e.Name}); err != nil {
		s.logger.Debugf("failed to record side effect failure: %v", err)
	}
}

// NewService validates platform once, a broken configuration is reported on every request
func NewService(
	platform config.PlatformSpec,
	callers CallerFactory,
	admin AdminInterface,
	policy RolePolicy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.configErr = platform.Validate()
	if s.configErr == nil && (callers == nil || admin == nil) {
		s.configErr = fmt.Errorf("platform capabilities are not available")
	}

	s.callers = callers
	s.admin = admin
	s.policy = policy

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
