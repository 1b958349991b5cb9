// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store and prepares its schema.

# Connecting

Open creates the shared connection pool and pings it:

	conn, err := db.Open(ctx, db.TypePostgres, cfg.DatabaseURL, cfg.MaxOpenConns)

Two database types are supported:

  - postgres: production, via lib/pq
  - sqlite: local development and tests, via modernc.org/sqlite

SQLite is limited to one open connection so concurrent writes queue
instead of failing with SQLITE_BUSY. Use a file path, not :memory:.

# Schema Creation

CreateSchema applies the embedded goose migrations for the dialect:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times. The migration uses IF NOT EXISTS, so an
ideas table created by an earlier deployment is adopted as is.

# Tables

  - ideas: id, text (1-280 chars), votes (>= 0), created_at
  - goose_db_version: applied migrations, managed by goose

# Indexes

  - ideas.(votes DESC, created_at DESC) for the ranked list

# Errors

Both functions return *BootstrapError. The server treats it as fatal.
*/
package db
