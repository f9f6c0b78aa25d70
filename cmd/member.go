// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/team-member-service/internal/types"
	"github.com/canonical/team-member-service/pkg/members"
)

const createTeamMemberPath = "/functions/v1/create-team-member"

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage team members",
}

var createMemberCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a team member account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		member := new(types.NewMember)
		member.Email, _ = cmd.Flags().GetString("email")
		member.Password, _ = cmd.Flags().GetString("password")
		member.Nome, _ = cmd.Flags().GetString("nome")
		member.Role, _ = cmd.Flags().GetString("role")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := createMember(ctx, endpoint, token, member)
		if err != nil {
			return fmt.Errorf("failed to create team member: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Team member created: %s\n%s\n", resp.UserID, resp.Message)
		return nil
	},
}

func init() {
	createMemberCmd.Flags().String("email", "", "Login email of the new member")
	createMemberCmd.Flags().String("password", "", "Initial password of the new member")
	createMemberCmd.Flags().String("nome", "", "Display name of the new member")
	createMemberCmd.Flags().String("role", "user", "Role assigned to the new member")
	_ = createMemberCmd.MarkFlagRequired("email")
	_ = createMemberCmd.MarkFlagRequired("password")
	_ = createMemberCmd.MarkFlagRequired("nome")

	memberCmd.AddCommand(createMemberCmd)
	rootCmd.AddCommand(memberCmd)
}

func createMember(ctx context.Context, endpoint, token string, member *types.NewMember) (*members.CreatedResponse, error) {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	body, err := json.Marshal(member)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+createTeamMemberPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := new(members.ErrorResponse)
		if err := json.Unmarshal(payload, apiErr); err != nil || apiErr.Error == "" {
			return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(payload))
		}
		return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, apiErr.Error)
	}

	created := new(members.CreatedResponse)
	if err := json.Unmarshal(payload, created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return created, nil
}
