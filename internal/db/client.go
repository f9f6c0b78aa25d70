// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
)

// Config holds the pool settings for the members database.
type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

func (c Config) poolConfig() (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}

	if c.MaxConns > 0 {
		pc.MaxConns = c.MaxConns
	}

	if c.MinConns > 0 && c.MinConns <= pc.MaxConns {
		pc.MinConns = c.MinConns
	}

	if c.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = c.MaxConnLifetime
		pc.MaxConnLifetimeJitter = c.MaxConnLifetime / 10
	}

	if c.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = c.MaxConnIdleTime
	}

	if c.TracingEnabled {
		// picks up the global TracerProvider set by the tracing package
		pc.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	return pc, nil
}

// DBClient owns the pgx pool and exposes it to squirrel through database/sql.
type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a builder bound to the pool, statements autocommit.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.db)
}

// Ping reports whether the database answers, it backs the readiness probe.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens the pool. An unreachable database is logged and not
// fatal, requests surface the connection error instead.
func NewDBClient(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	pc, err := cfg.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record database pool stats: %w", err)
		}
	}

	d := new(DBClient)
	d.pool = pool
	d.db = stdlib.OpenDBFromPool(pool)
	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if err := d.db.PingContext(ctx); err != nil {
		logger.Errorf("failed to connect to the database: %v", err)
	}

	return d, nil
}
