package models

import (
	"encoding/json"
	"time"
)

// Text limits for an idea
const (
	MaxTextLength = 280
	MaxListSize   = 200
)

// Request types

// Text is kept raw so non-string JSON values can be coerced the same way
// the web client has always been served.
type CreateIdeaRequest struct {
	Text json.RawMessage `json:"text"`
}

// Response types

type HealthResponse struct {
	OK bool `json:"ok"`
}

// Domain types

type Idea struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Votes     int64     `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
