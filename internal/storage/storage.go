// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/team-member-service/internal/db"
	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/types"
)

const (
	profilesTable    = "profiles"
	membershipsTable = "usuarios"
)

var _ StorageInterface = (*Storage)(nil)

// Storage reads and writes the profiles and usuarios tables directly in Postgres
type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

// ProfileRole returns the role stored for userID.
// The credential is not used, the connection role bypasses row level security.
func (s *Storage) ProfileRole(ctx context.Context, _ string, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProfileRole")
	defer span.End()

	var role sql.NullString
	err := s.db.Statement(ctx).
		Select("role").
		From(profilesTable).
		Where(sq.Eq{"id": userID}).
		QueryRowContext(ctx).
		Scan(&role)

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}

	if err != nil {
		return "", fmt.Errorf("failed to get profile role: %w", err)
	}

	return role.String, nil
}

func (s *Storage) UpdateProfileRole(ctx context.Context, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProfileRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update(profilesTable).
		Set("role", role).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update profile role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}

	return nil
}

func (s *Storage) InsertMembership(ctx context.Context, m *types.Membership) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert(membershipsTable).
		Columns("id", "user_id", "nome", "email", "role").
		Values(id.String(), m.UserID, m.Nome, m.Email, m.Role).
		ExecContext(ctx)

	if err != nil {
		return classifyWriteError(err, fmt.Sprintf("membership of user %s", m.UserID))
	}

	m.ID = id.String()

	return nil
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
