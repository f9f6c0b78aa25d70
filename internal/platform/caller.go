// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"context"
	"errors"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/pkg/authentication"
)

var ErrMissingCredential = errors.New("no credential provided")

// Caller is a handle restricted to what the owner of one credential is allowed to do
type Caller struct {
	credential string

	verifier authentication.TokenVerifierInterface
	profiles ProfileReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// UserID resolves the principal owning the credential
func (c *Caller) UserID(ctx context.Context) (string, error) {
	ctx, span := c.tracer.Start(ctx, "platform.Caller.UserID")
	defer span.End()

	if c.credential == "" {
		return "", ErrMissingCredential
	}

	return c.verifier.VerifyToken(ctx, c.credential)
}

// ProfileRole reads the stored role of userID with the caller's own credential
func (c *Caller) ProfileRole(ctx context.Context, userID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "platform.Caller.ProfileRole")
	defer span.End()

	return c.profiles.ProfileRole(ctx, c.credential, userID)
}

// CallerFactory binds credentials to caller handles sharing the same backends
type CallerFactory struct {
	verifier authentication.TokenVerifierInterface
	profiles ProfileReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (f *CallerFactory) ForCredential(credential string) *Caller {
	return &Caller{
		credential: credential,
		verifier:   f.verifier,
		profiles:   f.profiles,
		tracer:     f.tracer,
		monitor:    f.monitor,
		logger:     f.logger,
	}
}

func NewCallerFactory(verifier authentication.TokenVerifierInterface, profiles ProfileReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *CallerFactory {
	f := new(CallerFactory)

	f.verifier = verifier
	f.profiles = profiles

	f.tracer = tracer
	f.monitor = monitor
	f.logger = logger

	return f
}
