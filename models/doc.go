// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateIdeaRequest: text (kept as raw JSON for coercion)

# Response Types

  - HealthResponse: ok
  - ErrorResponse: error

# Domain Types

  - Idea: id, text, votes, created_at

Idea serializes as:

	{"id":1,"text":"Build a rocket","votes":0,"created_at":"2025-06-01T12:00:00Z"}

# Constants

	MaxTextLength = 280 // characters, after trimming
	MaxListSize   = 200 // cap on GET /ideas
*/
package models
