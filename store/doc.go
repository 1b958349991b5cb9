// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists ideas in the ideas table.

	s := store.New(conn, cfg.DatabaseType)
	idea, err := s.Upvote(ctx, 42)

Each method issues exactly one statement:

  - List:   SELECT ... ORDER BY votes DESC, created_at DESC, id DESC LIMIT $1
  - Create: INSERT ... RETURNING
  - Upvote: UPDATE ... SET votes = votes + 1 ... RETURNING

Upvote returns ErrNotFound when no row matches. Queries are written with
Postgres placeholders and rebound for SQLite.
*/
package store
