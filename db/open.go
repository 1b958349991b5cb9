// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to the store and verifies the connection.
// The returned pool is shared by every request handler.
func Open(ctx context.Context, dbType, url string, maxOpenConns int) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypePostgres:
		driver = "postgres"
	case TypeSQLite:
		driver = "sqlite"
	default:
		return nil, &BootstrapError{Stage: "connect", Err: fmt.Errorf("unsupported database type %q", dbType)}
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, &BootstrapError{Stage: "connect", Err: err}
	}

	if dbType == TypeSQLite {
		// A single writer connection; concurrent statements queue on the pool
		conn.SetMaxOpenConns(1)
	} else {
		if maxOpenConns > 0 {
			conn.SetMaxOpenConns(maxOpenConns)
			conn.SetMaxIdleConns(maxOpenConns)
		}
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, &BootstrapError{Stage: "connect", Err: fmt.Errorf("database ping failed: %w", err)}
	}

	return conn, nil
}
