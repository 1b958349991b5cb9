// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Idea Board API server.

Idea Board is a minimal idea-sharing board: anyone can submit a short text
idea and upvote existing ones. The list view ranks ideas by votes, then by
recency.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 4000 -d "postgres://..."

For local development without Postgres:

	go run . -t sqlite -d ./ideas.db

A .env file in the working directory is loaded first, if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (or PGHOST and friends for postgres)

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - CORS_ORIGIN (--cors-origin): allowed frontend origin (default: *)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - ideas: Validation and ranking rules (the idea service)
  - store: SQL statements against the ideas table
  - db: Connection and schema bootstrap
  - metrics: Prometheus collectors
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
