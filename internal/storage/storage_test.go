// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/types"
)

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

type fakeRow struct {
	role *string
	err  error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	ns := dest[0].(*sql.NullString)
	if r.role != nil {
		*ns = sql.NullString{String: *r.role, Valid: true}
	}
	return nil
}

// fakeRunner records the statements squirrel sends to the database
type fakeRunner struct {
	query string
	args  []interface{}

	row     *fakeRow
	result  sql.Result
	execErr error
}

func (f *fakeRunner) Exec(query string, args ...interface{}) (sql.Result, error) {
	return f.ExecContext(context.Background(), query, args...)
}

func (f *fakeRunner) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRunner) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query = query
	f.args = args
	return f.result, f.execErr
}

func (f *fakeRunner) QueryRowContext(ctx context.Context, query string, args ...interface{}) sq.RowScanner {
	f.query = query
	f.args = args
	return f.row
}

type fakeDBClient struct {
	runner *fakeRunner
}

func (f *fakeDBClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(f.runner)
}

func (f *fakeDBClient) Ping(context.Context) error { return nil }

func (f *fakeDBClient) Close() {}

func newTestStorage(runner *fakeRunner) *Storage {
	logger := logging.NewNoopLogger()
	return NewStorage(&fakeDBClient{runner: runner}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestStorage_ProfileRole(t *testing.T) {
	admin := "admin"

	tests := []struct {
		name     string
		row      *fakeRow
		wantRole string
		wantErr  error
	}{
		{
			name:     "role found",
			row:      &fakeRow{role: &admin},
			wantRole: "admin",
		},
		{
			name:     "null role",
			row:      &fakeRow{},
			wantRole: "",
		},
		{
			name:    "no row",
			row:     &fakeRow{err: sql.ErrNoRows},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{row: tt.row}
			s := newTestStorage(runner)

			role, err := s.ProfileRole(context.Background(), "caller-token", "user-1")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tt.wantRole {
				t.Errorf("expected role %q, got %q", tt.wantRole, role)
			}
			if runner.query != "SELECT role FROM profiles WHERE id = $1" {
				t.Errorf("unexpected query %q", runner.query)
			}
			if len(runner.args) != 1 || runner.args[0] != "user-1" {
				t.Errorf("unexpected args %v", runner.args)
			}
		})
	}
}

func TestStorage_UpdateProfileRole(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{
			name:   "updated",
			result: fakeResult{rows: 1},
		},
		{
			name:    "profile missing",
			result:  fakeResult{rows: 0},
			wantErr: ErrNotFound,
		},
		{
			name:    "database error",
			execErr: errors.New("connection reset"),
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{result: tt.result, execErr: tt.execErr}
			s := newTestStorage(runner)

			err := s.UpdateProfileRole(context.Background(), "user-1", "admin")

			switch {
			case tt.wantErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.wantErr != nil && err == nil:
				t.Fatal("expected error but got none")
			case errors.Is(tt.wantErr, ErrNotFound) && !errors.Is(err, ErrNotFound):
				t.Fatalf("expected not found, got %v", err)
			}

			if !strings.HasPrefix(runner.query, "UPDATE profiles SET role = $1, updated_at = now() WHERE id = $2") {
				t.Errorf("unexpected query %q", runner.query)
			}
		})
	}
}

func TestStorage_InsertMembership(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{
			name: "inserted",
		},
		{
			name:    "duplicate membership",
			execErr: &pgconn.PgError{Code: "23505"},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "user row missing",
			execErr: &pgconn.PgError{Code: "23503"},
			wantErr: ErrMissingUser,
		},
		{
			name:    "connection lost",
			execErr: errors.New("conn closed"),
			wantErr: errors.New("conn closed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{result: fakeResult{rows: 1}, execErr: tt.execErr}
			s := newTestStorage(runner)

			m := &types.Membership{UserID: "user-2", Nome: "Maria", Email: "maria@example.com", Role: "user"}
			err := s.InsertMembership(context.Background(), m)

			if tt.wantErr != nil {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if (errors.Is(tt.wantErr, ErrDuplicateKey) || errors.Is(tt.wantErr, ErrMissingUser)) && !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v to wrap %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasPrefix(runner.query, "INSERT INTO usuarios") {
				t.Errorf("unexpected query %q", runner.query)
			}
			if len(runner.args) != 5 {
				t.Fatalf("expected 5 args, got %v", runner.args)
			}
			if runner.args[1] != "user-2" || runner.args[2] != "Maria" || runner.args[3] != "maria@example.com" || runner.args[4] != "user" {
				t.Errorf("unexpected args %v", runner.args)
			}
			if m.ID == "" {
				t.Error("expected membership ID to be set")
			}
		})
	}
}
