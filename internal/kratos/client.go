// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"
	"github.com/tidwall/gjson"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/types"
)

const (
	defaultSchemaID = "default"
	addressViaEmail = "email"
	addressVerified = "completed"
)

var messagePaths = []string{"error.reason", "error.message", "ui.messages.0.text", "message"}

// APIError is an error answer of the Kratos APIs
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ProviderMessage is the message returned by Kratos, unchanged
func (e *APIError) ProviderMessage() string {
	return e.Message
}

type ClientInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (string, error)
	CreateUser(ctx context.Context, u *types.NewUser) (*types.CreatedUser, error)
}

// Client resolves sessions through the public API and manages identities through the admin API
type Client struct {
	public *ory.APIClient
	admin  *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) apiError(r *http.Response, err error) error {
	var openAPIErr *ory.GenericOpenAPIError
	if !errors.As(err, &openAPIErr) || r == nil {
		return err
	}

	apiErr := &APIError{StatusCode: r.StatusCode}

	body := openAPIErr.Body()
	for _, path := range messagePaths {
		if m := gjson.GetBytes(body, path); m.Type == gjson.String && m.String() != "" {
			apiErr.Message = m.String()
			return apiErr
		}
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = openAPIErr.Error()
	}

	return apiErr
}

// VerifyToken resolves the identity owning a session token
func (c *Client) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.VerifyToken")
	defer span.End()

	session, r, err := c.public.FrontendAPI.ToSession(ctx).XSessionToken(rawToken).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", c.apiError(r, err))
	}

	if !session.GetActive() {
		return "", fmt.Errorf("session %s is not active", session.Id)
	}

	identity := session.GetIdentity()
	if identity.Id == "" {
		return "", fmt.Errorf("session %s has no identity", session.Id)
	}

	return identity.Id, nil
}

// CreateUser creates an identity with a password credential and an already verified email address
func (c *Client) CreateUser(ctx context.Context, u *types.NewUser) (*types.CreatedUser, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateUser")
	defer span.End()

	password := u.Password

	body := ory.CreateIdentityBody{
		SchemaId: defaultSchemaID,
		Traits: map[string]interface{}{
			"email": u.Email,
		},
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
		MetadataPublic: u.Metadata,
	}

	if u.EmailConfirmed {
		body.VerifiableAddresses = []ory.VerifiableIdentityAddress{
			{
				Value:    u.Email,
				Verified: true,
				Via:      addressViaEmail,
				Status:   addressVerified,
			},
		}
	}

	identity, r, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", c.apiError(r, err))
	}

	created := &types.CreatedUser{
		ID:    identity.Id,
		Email: u.Email,
	}

	for _, address := range identity.VerifiableAddresses {
		if address.Value == u.Email && address.Verified {
			created.EmailConfirmed = true
		}
	}

	created.Metadata = identity.MetadataPublic

	return created, nil
}

// Ping checks the admin API answers an authenticated identity listing
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Ping")
	defer span.End()

	_, r, err := c.admin.IdentityAPI.ListIdentities(ctx).PageSize(1).Execute()
	if err != nil {
		return fmt.Errorf("kratos is not ready: %w", c.apiError(r, err))
	}

	return nil
}

func newAPIClient(url string, token string) *ory.APIClient {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: url}}
	if token != "" {
		conf.AddDefaultHeader("Authorization", "Bearer "+token)
	}
	return ory.NewAPIClient(conf)
}

// NewClient returns a Kratos client, adminToken is only needed when the admin API sits behind a token check
func NewClient(kratosPublicURL, kratosAdminURL, adminToken string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		public:  newAPIClient(kratosPublicURL, ""),
		admin:   newAPIClient(kratosAdminURL, adminToken),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
