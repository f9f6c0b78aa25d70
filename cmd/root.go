// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint string
	token    string
)

var rootCmd = &cobra.Command{
	Use:          "team-member-service",
	Short:        "Team Member Service",
	Long:         `Team Member Service lets administrators provision accounts for their team.`,
	SilenceUsage: true,
}

// Execute runs the command tree, exiting non-zero when a command fails.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "base URL of a running service")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "access token of the calling administrator")
}
