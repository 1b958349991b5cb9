// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed migrations
var migrations embed.FS

// BootstrapError reports a failure to connect to or prepare the store.
// The server must not start serving when one is returned.
type BootstrapError struct {
	Stage string
	Err   error
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("bootstrap %s: %v", e.Stage, e.Err)
}

func (e *BootstrapError) Unwrap() error {
	return e.Err
}

// CreateSchema brings the ideas table up to date for the given database type.
// Safe to call multiple times - applied migrations are skipped and the table
// itself is created with IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sql.DB, dbType string) error {
	dialect, dir, err := dialectFor(dbType)
	if err != nil {
		return &BootstrapError{Stage: "schema", Err: err}
	}

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return &BootstrapError{Stage: "schema", Err: err}
	}

	provider, err := goose.NewProvider(dialect, conn, fsys)
	if err != nil {
		return &BootstrapError{Stage: "schema", Err: fmt.Errorf("failed to load migrations: %w", err)}
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return &BootstrapError{Stage: "schema", Err: fmt.Errorf("failed to create schema: %w", err)}
	}
	for _, res := range results {
		slog.Info("migration applied",
			"version", res.Source.Version,
			"duration_ms", res.Duration.Milliseconds(),
		)
	}

	return nil
}

func dialectFor(dbType string) (database.Dialect, string, error) {
	switch dbType {
	case TypePostgres:
		return database.DialectPostgres, "migrations/postgres", nil
	case TypeSQLite:
		return database.DialectSQLite3, "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported database type %q", dbType)
	}
}
