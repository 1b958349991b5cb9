// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Idea Board API.

# Handler Types

IdeaHandler serves the board. It is created with the idea service and the
metrics set:

	ideaHandler := handlers.NewIdeaHandler(svc, m)

# Endpoints

	GET  /ideas             → ListIdeas  (200, array)
	POST /ideas             → CreateIdea (201, created idea)
	POST /ideas/{id}/upvote → Upvote     (200, updated idea)

# Error Mapping

	ideas.ErrTextRequired → 400 {"error":"Text is required"}
	ideas.ErrInvalidID    → 400 {"error":"Invalid id"}
	*ideas.NotFoundError  → 404 {"error":"Not found"}
	*ideas.StorageError   → 500 {"error":"Failed to ..."}

Storage error detail is logged and never sent to the caller.

# Text Coercion

The "text" field is read as raw JSON. Strings are used as is, numbers as
their value and true as "true". null, false, 0, objects and arrays count
as missing text.
*/
package handlers
