// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store connects to the database service with the credentials the
// web process is configured with and reports who it connected as.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/MKhiriev/envresolve/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// MaintenanceDatabase is the database every PostgreSQL server carries and
// that catalog lookups connect to.
const MaintenanceDatabase = "postgres"

// DB is a database/sql handle opened through the pgx driver.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Session is the identity the server reports for a connection.
type Session struct {
	User     string `json:"user"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// ParseDSN turns a resolved DJANGO_DATABASE_URL into a pgx connection config.
// The returned error never carries the password.
func ParseDSN(u *config.URL) (*pgx.ConnConfig, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: no url", ErrInvalidDSN)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidDSN, u.Scheme)
	}

	cfg, err := pgx.ParseConfig(u.Raw())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDSN, u.Redacted())
	}

	return cfg, nil
}

// MaintenanceConfig returns a copy of cfg pointing at [MaintenanceDatabase],
// with the same credentials.
func MaintenanceConfig(cfg *pgx.ConnConfig) *pgx.ConnConfig {
	c := cfg.Copy()
	c.Database = MaintenanceDatabase

	return c
}

// Open returns a handle for cfg without connecting. The first query or
// [DB.Ping] dials the server.
func Open(cfg *pgx.ConnConfig, log *logger.Logger) *DB {
	conn := stdlib.OpenDB(*cfg)

	// a single probe connection is enough
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	return NewDB(conn, log.GetChildLogger())
}

// NewConnectPostgres opens a handle for cfg and pings it.
func NewConnectPostgres(ctx context.Context, cfg *pgx.ConnConfig, log *logger.Logger) (*DB, error) {
	db := Open(cfg, log)
	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("connected to database successfully")

	return db, nil
}

// NewDB wraps an already opened handle.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// Ping verifies the server accepts the configured credentials.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		db.logger.Err(err).Msg("error connecting database (ping)")
		return fmt.Errorf("error connecting database: %w", Classify(err))
	}

	return nil
}

// Identify asks the server which user and database the connection runs as.
func (db *DB) Identify(ctx context.Context) (Session, error) {
	query, args, err := sessionQuery()
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s Session
	err = db.QueryRowContext(ctx, query, args...).Scan(&s.User, &s.Database, &s.Version)
	if err != nil {
		db.logger.Err(err).Msg("error identifying database session")
		return Session{}, fmt.Errorf("%w: %w", ErrScanningRow, Classify(err))
	}

	return s, nil
}

// DatabaseExists reports whether name exists on the server.
func (db *DB) DatabaseExists(ctx context.Context, name string) (bool, error) {
	query, args, err := databaseExistsQuery(name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		db.logger.Err(err).Str("database", name).Msg("error looking up database")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, Classify(err))
	}

	return exists, nil
}
