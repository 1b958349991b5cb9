// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseURL: Store connection string (required, see below)
  - DatabaseType: postgres or sqlite (default: postgres)
  - CORSOrigin: Allowed cross-origin caller(s) (default: *)
  - QueryTimeout: Per-statement store timeout (default: 5s)
  - MaxOpenConns: Connection pool size (default: 10)
  - LogLevel: debug, info, warn or error (default: info)
  - ShutdownTimeout: Graceful shutdown bound (default: 10s, env only)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	--cors-origin   Allowed origin(s)
	--query-timeout Store statement timeout
	--max-conns     Pool size
	--log-level     Log level

# Environment Variables

Environment values are decoded with envconfig and become flag defaults:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	CORS_ORIGIN       → --cors-origin
	QUERY_TIMEOUT     → --query-timeout
	DB_MAX_OPEN_CONNS → --max-conns
	LOG_LEVEL         → --log-level
	SHUTDOWN_TIMEOUT

CLI flags take precedence over environment variables. main loads a .env
file into the environment first, if one exists.

# Validation

ParseFlags returns an error if:

  - the port is outside 1-65535
  - the database type is unknown
  - DATABASE_URL is empty, unless the type is postgres and PGHOST is set
    (lib/pq then reads PGHOST, PGPORT, PGUSER, PGPASSWORD, PGDATABASE)
  - the query timeout is not positive
  - the log level cannot be parsed
*/
package cliparse
