// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/team-member-service/migrations"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// migrateCmd manages the profiles and usuarios tables used by the postgres data store
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Run the migrations of the postgres data store, "up" is the default`,
	Args:  migrateArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", formatText, "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) > 1 {
			return fmt.Errorf("%q does not take a version", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("invalid migration command: %q", args[0])
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	version := int64(-1)
	if len(args) > 1 {
		version, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	format, _ := cmd.Flags().GetString("format")

	if dsn == "" {
		return fmt.Errorf("a DSN is required, use --dsn or set DSN")
	}

	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid output format: %q", format)
	}

	cmd.SilenceUsage = true

	return migrate(cmd.Context(), dsn, command, format, version, cmd.OutOrStdout())
}

func migrate(ctx context.Context, dsn, command, format string, version int64, out io.Writer) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("DSN validation failed: %v", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("DB connection failed: %v", err)
	}

	var opts []goose.ProviderOption
	if format == formatJSON {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	switch command {
	case "down":
		return migrateDown(ctx, provider, version, format, out)
	case "status":
		return migrateStatus(ctx, provider, format, out)
	case "check":
		return migrateCheck(ctx, provider, format, out)
	default:
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		return printResults(results, format, out)
	}
}

func migrateDown(ctx context.Context, provider *goose.Provider, version int64, format string, out io.Writer) error {
	if version >= 0 {
		results, err := provider.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return printResults(results, format, out)
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return err
	}

	return printResults([]*goose.MigrationResult{result}, format, out)
}

func printResults(results []*goose.MigrationResult, format string, out io.Writer) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if format == formatJSON {
		return json.NewEncoder(out).Encode(map[string]interface{}{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No migrations to apply")
	}

	for _, r := range results {
		fmt.Fprintf(out, "%-6s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}

	return nil
}

func migrateStatus(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if format == formatJSON {
		return json.NewEncoder(out).Encode(statuses)
	}

	fmt.Fprintln(out, "    Applied At                  Migration")
	fmt.Fprintln(out, "    =======================================")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
	}

	return nil
}

// migrateCheck fails when migrations are pending so it can gate deployments
func migrateCheck(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if format == formatJSON {
		if err := json.NewEncoder(out).Encode(map[string]interface{}{"status": state, "version": current}); err != nil {
			return err
		}
	} else if !pending {
		fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return nil
}
