// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var tracedClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// discoveryContext makes go-oidc fetch discovery documents and keys through a traced client.
func discoveryContext(ctx context.Context) context.Context {
	return oidc.ClientContext(ctx, tracedClient)
}

// NewProvider loads the issuer's discovery document.
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	provider, err := oidc.NewProvider(discoveryContext(ctx), issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover issuer %s: %w", issuer, err)
	}

	return provider, nil
}

// NewProviderWithJWKS builds a verifier from a key set URL, for issuers
// that publish no discovery document such as Supabase auth.
func NewProviderWithJWKS(ctx context.Context, issuer, jwksURL, audience string) (*oidc.IDTokenVerifier, error) {
	if jwksURL == "" {
		return nil, fmt.Errorf("missing JWKS URL for issuer %s", issuer)
	}

	keySet := oidc.NewRemoteKeySet(discoveryContext(ctx), jwksURL)

	return oidc.NewVerifier(issuer, keySet, verifierConfig(audience)), nil
}
