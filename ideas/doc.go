// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ideas implements the idea board's list, create and upvote rules.

	svc := ideas.NewService(store.New(conn, cfg.DatabaseType), cfg.QueryTimeout)

# Operations

  - List: ranked by votes, then created_at, newest first; capped at 200
  - Create: trims and truncates text to 280 characters; empty is rejected
  - Upvote: parses the id, then increments atomically in the store

Validation runs before the store is touched.

# Errors

  - *ValidationError: bad input (ErrTextRequired, ErrInvalidID)
  - *NotFoundError: upvote of an unknown id
  - *StorageError: store failure or timeout; safe to retry

Voting is anonymous and unlimited. Repeat upvotes from one caller all count.
*/
package ideas
