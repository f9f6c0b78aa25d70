// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
)

// supportedSigningAlgs covers the legacy and asymmetric signing keys of the platform
var supportedSigningAlgs = []string{oidc.RS256, oidc.ES256}

// JWTVerifier validates access tokens locally against the issuer key set
type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	var claims struct {
		Subject string `json:"sub"`
		Role    string `json:"role"`
	}

	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return "", err
	}

	// anon and service role keys are valid tokens without a user behind them
	if claims.Subject == "" {
		return "", fmt.Errorf("token of role %q has no subject", claims.Role)
	}

	return claims.Subject, nil
}

func verifierConfig(audience string) *oidc.Config {
	return &oidc.Config{
		ClientID:             audience,
		SkipClientIDCheck:    audience == "",
		SkipIssuerCheck:      false,
		SupportedSigningAlgs: supportedSigningAlgs,
	}
}

func NewJWTVerifier(
	provider ProviderInterface,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	v.verifier = provider.Verifier(verifierConfig(audience))

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
