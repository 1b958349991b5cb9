// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ideas

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
)

// Store is the durable backing the service delegates to. Implementations
// must apply each call as one atomic statement.
type Store interface {
	List(ctx context.Context, limit int) ([]models.Idea, error)
	Create(ctx context.Context, text string) (models.Idea, error)
	Upvote(ctx context.Context, id int64) (models.Idea, error)
}

// Service validates input and returns the store's post-mutation state.
// It holds no idea state of its own.
type Service struct {
	store   Store
	timeout time.Duration
}

// NewService wires a service to its store. A zero timeout means calls are
// bounded only by the caller's context.
func NewService(s Store, timeout time.Duration) *Service {
	return &Service{store: s, timeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// List returns the ranked board, at most MaxListSize ideas.
func (s *Service) List(ctx context.Context, limit int) ([]models.Idea, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.store.List(ctx, clampLimit(limit))
	if err != nil {
		return nil, &StorageError{Op: "list ideas", Err: err}
	}
	if list == nil {
		list = []models.Idea{}
	}
	return list, nil
}

// Create validates raw text and stores a new idea with zero votes.
func (s *Service) Create(ctx context.Context, rawText string) (models.Idea, error) {
	text, err := NormalizeText(rawText)
	if err != nil {
		return models.Idea{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	idea, err := s.store.Create(ctx, text)
	if err != nil {
		return models.Idea{}, &StorageError{Op: "create idea", Err: err}
	}
	return idea, nil
}

// Upvote adds exactly one vote to the idea named by rawID.
func (s *Service) Upvote(ctx context.Context, rawID string) (models.Idea, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return models.Idea{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	idea, err := s.store.Upvote(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Idea{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.Idea{}, &StorageError{Op: "upvote idea", Err: err}
	}
	return idea, nil
}
