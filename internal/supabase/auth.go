// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package supabase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/canonical/team-member-service/internal/types"
)

// User is the auth API representation of an account
type User struct {
	ID               string                 `json:"id"`
	Email            string                 `json:"email"`
	Role             string                 `json:"role"`
	EmailConfirmedAt *time.Time             `json:"email_confirmed_at,omitempty"`
	UserMetadata     map[string]interface{} `json:"user_metadata,omitempty"`
}

// AdminUserAttributes is the body of the admin create user call
type AdminUserAttributes struct {
	Email        string                 `json:"email"`
	Password     string                 `json:"password"`
	EmailConfirm bool                   `json:"email_confirm"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// GetUser returns the user owning the bound bearer token
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	ctx, span := c.tracer.Start(ctx, "supabase.Client.GetUser")
	defer span.End()

	user := new(User)
	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/auth/v1/user"}, user); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// VerifyToken resolves the user id behind an access token through the auth API
func (c *Client) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "supabase.Client.VerifyToken")
	defer span.End()

	user, err := c.WithBearer(rawToken).GetUser(ctx)
	if err != nil {
		return "", err
	}

	if user.ID == "" {
		return "", fmt.Errorf("no user bound to token")
	}

	return user.ID, nil
}

// AdminCreateUser creates an account, the client must hold the service role key
func (c *Client) AdminCreateUser(ctx context.Context, attrs *AdminUserAttributes) (*User, error) {
	ctx, span := c.tracer.Start(ctx, "supabase.Client.AdminCreateUser")
	defer span.End()

	user := new(User)
	r := request{
		method: http.MethodPost,
		path:   "/auth/v1/admin/users",
		body:   attrs,
	}

	if _, err := c.do(ctx, r, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (c *Client) CreateUser(ctx context.Context, u *types.NewUser) (*types.CreatedUser, error) {
	user, err := c.AdminCreateUser(
		ctx,
		&AdminUserAttributes{
			Email:        u.Email,
			Password:     u.Password,
			EmailConfirm: u.EmailConfirmed,
			UserMetadata: u.Metadata,
		},
	)

	if err != nil {
		return nil, err
	}

	return &types.CreatedUser{
		ID:             user.ID,
		Email:          user.Email,
		EmailConfirmed: user.EmailConfirmedAt != nil,
		Metadata:       user.UserMetadata,
	}, nil
}

// Ping checks the auth API is serving requests
func (c *Client) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "supabase.Client.Ping")
	defer span.End()

	if _, err := c.do(ctx, request{method: http.MethodGet, path: "/auth/v1/health"}, nil); err != nil {
		return fmt.Errorf("auth api is not healthy: %w", err)
	}

	return nil
}
