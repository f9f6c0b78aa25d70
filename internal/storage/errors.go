// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound     = errors.New("row not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
	ErrMissingUser  = errors.New("referenced user does not exist")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classifyWriteError maps constraint violations to the package sentinels, subject names the row
func classifyWriteError(err error, subject string) error {
	switch pgCode(err) {
	case pgUniqueViolation:
		return fmt.Errorf("%s: %w", subject, ErrDuplicateKey)
	case pgForeignKeyViolation:
		return fmt.Errorf("%s: %w", subject, ErrMissingUser)
	default:
		return fmt.Errorf("failed to write %s: %w", subject, err)
	}
}
