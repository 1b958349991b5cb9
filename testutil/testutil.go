// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/idea-board/db"
	"github.com/danielhkuo/idea-board/ideas"
	"github.com/danielhkuo/idea-board/metrics"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
)

// TestDBURLEnv selects a Postgres test database; SQLite is used when unset
const TestDBURLEnv = "TEST_DATABASE_URL"

// sqliteTimeLayout matches the created_at default of the sqlite schema
const sqliteTimeLayout = "2006-01-02T15:04:05.000Z"

// DBType reports which store the tests run against
func DBType() string {
	if os.Getenv(TestDBURLEnv) != "" {
		return db.TypePostgres
	}
	return db.TypeSQLite
}

// SetupTestDB creates a fresh test database with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	var conn *sql.DB
	var err error
	if url := os.Getenv(TestDBURLEnv); url != "" {
		conn, err = db.Open(ctx, db.TypePostgres, url, 10)
		if err != nil {
			t.Fatalf("Failed to open test database: %v", err)
		}

		// Clean up tables before each test
		_, err = conn.Exec(`
			DROP TABLE IF EXISTS ideas CASCADE;
			DROP TABLE IF EXISTS goose_db_version CASCADE;
		`)
		if err != nil {
			conn.Close()
			t.Fatalf("Failed to clean database: %v", err)
		}
	} else {
		path := filepath.Join(t.TempDir(), "ideas.db")
		conn, err = db.Open(ctx, db.TypeSQLite, path, 0)
		if err != nil {
			t.Fatalf("Failed to open test database: %v", err)
		}
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn, DBType()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestService builds the idea service over conn
func NewTestService(conn *sql.DB) *ideas.Service {
	return ideas.NewService(store.New(conn, DBType()), 5*time.Second)
}

// NewTestMetrics returns metrics bound to a private registry
func NewTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// CreateTestIdea inserts an idea directly and returns its id
func CreateTestIdea(t *testing.T, conn *sql.DB, text string, votes int64, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	var err error
	if DBType() == db.TypeSQLite {
		err = conn.QueryRow(`
			INSERT INTO ideas (text, votes, created_at)
			VALUES (?1, ?2, ?3)
			RETURNING id
		`, text, votes, createdAt.UTC().Format(sqliteTimeLayout)).Scan(&id)
	} else {
		err = conn.QueryRow(`
			INSERT INTO ideas (text, votes, created_at)
			VALUES ($1, $2, $3)
			RETURNING id
		`, text, votes, createdAt).Scan(&id)
	}
	if err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}

	return id
}

// CountIdeas returns the number of stored ideas
func CountIdeas(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM ideas").Scan(&n); err != nil {
		t.Fatalf("Failed to count ideas: %v", err)
	}
	return n
}

// GetTestIdea reads one idea through the store's ranked list
func GetTestIdea(t *testing.T, conn *sql.DB, id int64) models.Idea {
	t.Helper()

	list, err := store.New(conn, DBType()).List(context.Background(), models.MaxListSize)
	if err != nil {
		t.Fatalf("Failed to list ideas: %v", err)
	}
	for _, idea := range list {
		if idea.ID == id {
			return idea
		}
	}
	t.Fatalf("Idea %d not found", id)
	return models.Idea{}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
