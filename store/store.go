// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/danielhkuo/idea-board/db"
	"github.com/danielhkuo/idea-board/models"
)

// ErrNotFound is returned when an upvote matches no row.
var ErrNotFound = errors.New("idea not found")

const (
	listQuery = `
		SELECT id, text, votes, created_at
		FROM ideas
		ORDER BY votes DESC, created_at DESC, id DESC
		LIMIT $1
	`

	createQuery = `
		INSERT INTO ideas (text)
		VALUES ($1)
		RETURNING id, text, votes, created_at
	`

	// The increment is computed by the store so concurrent upvotes never
	// lose an update.
	upvoteQuery = `
		UPDATE ideas
		SET votes = votes + 1
		WHERE id = $1
		RETURNING id, text, votes, created_at
	`
)

var placeholder = regexp.MustCompile(`\$(\d+)`)

// SQLStore keeps ideas in a relational table. Every method is a single
// statement, so no connection is held between calls.
type SQLStore struct {
	db *sql.DB

	listSQL   string
	createSQL string
	upvoteSQL string
}

func New(conn *sql.DB, dbType string) *SQLStore {
	return &SQLStore{
		db:        conn,
		listSQL:   rebind(dbType, listQuery),
		createSQL: rebind(dbType, createQuery),
		upvoteSQL: rebind(dbType, upvoteQuery),
	}
}

// rebind rewrites $N placeholders into SQLite's ?N form
func rebind(dbType, query string) string {
	if dbType != db.TypeSQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?$1")
}

// List returns up to limit ideas in ranked order
func (s *SQLStore) List(ctx context.Context, limit int) ([]models.Idea, error) {
	rows, err := s.db.QueryContext(ctx, s.listSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ideas: %w", err)
	}

	return ideas, nil
}

// Create inserts a new idea with zero votes and returns the stored row
func (s *SQLStore) Create(ctx context.Context, text string) (models.Idea, error) {
	idea, err := scanIdea(s.db.QueryRowContext(ctx, s.createSQL, text))
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to insert idea: %w", err)
	}
	return idea, nil
}

// Upvote increments the vote counter of one idea and returns the updated row
func (s *SQLStore) Upvote(ctx context.Context, id int64) (models.Idea, error) {
	idea, err := scanIdea(s.db.QueryRowContext(ctx, s.upvoteSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Idea{}, ErrNotFound
	}
	if err != nil {
		return models.Idea{}, fmt.Errorf("failed to upvote idea %d: %w", id, err)
	}
	return idea, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIdea(row scanner) (models.Idea, error) {
	var idea models.Idea
	err := row.Scan(&idea.ID, &idea.Text, &idea.Votes, timestamp{&idea.CreatedAt})
	return idea, err
}
