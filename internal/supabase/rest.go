// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/canonical/team-member-service/internal/types"
)

const (
	profilesTable    = "profiles"
	membershipsTable = "usuarios"

	// singleObjectMediaType makes the REST API fail unless exactly one row matches
	singleObjectMediaType = "application/vnd.pgrst.object+json"
)

var ErrNoRows = errors.New("no rows matched")

func eq(column, value string) url.Values {
	q := url.Values{}
	q.Set(column, "eq."+value)
	return q
}

// ProfileRole reads the role of a profile on behalf of the credential owner,
// row level security of the profiles table applies
func (c *Client) ProfileRole(ctx context.Context, credential, userID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "supabase.Client.ProfileRole")
	defer span.End()

	q := eq("id", userID)
	q.Set("select", "role")

	var profile struct {
		Role *string `json:"role"`
	}

	r := request{
		method:  http.MethodGet,
		path:    "/rest/v1/" + profilesTable,
		query:   q,
		headers: map[string]string{"Accept": singleObjectMediaType},
	}

	if _, err := c.WithBearer(credential).do(ctx, r, &profile); err != nil {
		return "", fmt.Errorf("failed to get profile role: %w", err)
	}

	if profile.Role == nil {
		return "", nil
	}

	return *profile.Role, nil
}

// UpdateProfileRole sets the role of an existing profile, a missing profile is reported as ErrNoRows
func (c *Client) UpdateProfileRole(ctx context.Context, userID, role string) error {
	ctx, span := c.tracer.Start(ctx, "supabase.Client.UpdateProfileRole")
	defer span.End()

	q := eq("id", userID)
	q.Set("select", "id")

	r := request{
		method:  http.MethodPatch,
		path:    "/rest/v1/" + profilesTable,
		query:   q,
		headers: map[string]string{"Prefer": "return=representation"},
		body:    map[string]string{"role": role},
	}

	var updated []json.RawMessage
	if _, err := c.do(ctx, r, &updated); err != nil {
		return fmt.Errorf("failed to update profile role: %w", err)
	}

	if len(updated) == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNoRows)
	}

	return nil
}

func (c *Client) InsertMembership(ctx context.Context, m *types.Membership) error {
	ctx, span := c.tracer.Start(ctx, "supabase.Client.InsertMembership")
	defer span.End()

	r := request{
		method:  http.MethodPost,
		path:    "/rest/v1/" + membershipsTable,
		headers: map[string]string{"Prefer": "return=minimal"},
		body:    m,
	}

	if _, err := c.do(ctx, r, nil); err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}

	return nil
}
