// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/testutil"
)

// TestConcurrentUpvotes verifies that simultaneous upvotes on the same idea
// are all applied (no lost updates)
func TestConcurrentUpvotes(t *testing.T) {
	handler, db := newTestHandler(t)

	id := testutil.CreateTestIdea(t, db, "Popular idea", 0, time.Now())
	idStr := strconv.FormatInt(id, 10)

	numVoters := 40

	var successCount atomic.Int32
	var wg sync.WaitGroup

	// Fire all upvotes at once
	start := make(chan struct{})
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			w := httptest.NewRecorder()
			handler.Upvote(w, upvoteRequest(idStr))

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful upvotes, got %d", numVoters, successCount.Load())
	}

	if votes := testutil.GetTestIdea(t, db, id).Votes; votes != int64(numVoters) {
		t.Errorf("Expected %d votes in database, got %d (lost updates)", numVoters, votes)
	}
}

// TestConcurrentCreates verifies that simultaneous submissions each get a
// distinct id
func TestConcurrentCreates(t *testing.T) {
	handler, db := newTestHandler(t)

	numIdeas := 20
	ids := make(chan int64, numIdeas)
	var wg sync.WaitGroup

	for i := 0; i < numIdeas; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/ideas", map[string]string{"text": "Idea " + strconv.Itoa(n)}, nil)
			w := httptest.NewRecorder()
			handler.CreateIdea(w, req)

			if w.Code != http.StatusCreated {
				t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
				return
			}
			var idea models.Idea
			if err := json.NewDecoder(w.Body).Decode(&idea); err != nil {
				t.Errorf("Failed to decode idea: %v", err)
				return
			}
			ids <- idea.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("Duplicate id %d", id)
		}
		seen[id] = true
	}

	if n := testutil.CountIdeas(t, db); n != numIdeas {
		t.Errorf("Expected %d ideas in database, got %d", numIdeas, n)
	}
}

// TestListDuringUpvotes verifies that lists read while upvotes are in flight
// are always well-formed and never show a count above what was applied
func TestListDuringUpvotes(t *testing.T) {
	handler, db := newTestHandler(t)

	id := testutil.CreateTestIdea(t, db, "Moving target", 0, time.Now())
	idStr := strconv.FormatInt(id, 10)

	numUpvotes := 30
	var applied atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < numUpvotes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.Upvote(w, upvoteRequest(idStr))
			if w.Code == http.StatusOK {
				applied.Add(1)
			}
		}()
	}

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler.ListIdeas(w, httptest.NewRequest("GET", "/ideas", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var list []models.Idea
		testutil.AssertJSON(t, w, &list)
		if len(list) != 1 || list[0].Text != "Moving target" {
			t.Fatalf("Unexpected list: %+v", list)
		}
		if list[0].Votes < 0 || list[0].Votes > int64(numUpvotes) {
			t.Errorf("Vote count out of range: %d", list[0].Votes)
		}
	}

	wg.Wait()

	if votes := testutil.GetTestIdea(t, db, id).Votes; votes != applied.Load() {
		t.Errorf("Expected %d votes, got %d", applied.Load(), votes)
	}
}
