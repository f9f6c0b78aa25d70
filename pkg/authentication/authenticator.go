// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
)

// NewJWTAuthenticator initializes a JWT token verifier, using the JWKS URL when
// provided and OIDC discovery otherwise
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if jwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", jwksURL)
		idTokenVerifier, err := NewProviderWithJWKS(ctx, issuer, jwksURL, audience)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS verifier: %v", err)
		}
		logger.Info("JWT authentication is enabled with manual JWKS URL")
		return NewJWTVerifierDirect(idTokenVerifier, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", issuer)
	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}
	logger.Info("JWT authentication is enabled with OIDC discovery")

	return NewJWTVerifier(provider, audience, tracer, monitor, logger), nil
}
