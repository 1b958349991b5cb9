// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewRouter(testutil.NewTestService(db), testutil.NewTestMetrics())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if body := strings.TrimSpace(w.Body.String()); body != `{"ok":true}` {
		t.Errorf(`Expected body '{"ok":true}', got '%s'`, body)
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "idea-board API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/polls", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// 400 and 404 are valid handler responses here
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/ideas"},
		{"POST", "/ideas"},
		{"POST", "/ideas/1/upvote"},
		{"GET", "/metrics"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/ideas"},
		{"PUT", "/ideas"},
		{"GET", "/ideas/1/upvote"},
		{"DELETE", "/ideas/1/upvote"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux := newTestRouter(t)

	req := testutil.MakeRequest("POST", "/ideas", map[string]string{"text": "Routed"}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.Idea
	testutil.AssertJSON(t, w, &created)

	t.Run("numeric id reaches handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("POST", "/ideas/1/upvote", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var idea models.Idea
		testutil.AssertJSON(t, w, &idea)
		if idea.ID != created.ID || idea.Votes != 1 {
			t.Errorf("Unexpected idea: %+v", idea)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("POST", "/ideas/abc/upvote", nil))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("logging adds request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/ideas", nil))
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("Expected X-Request-ID header")
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	// Generate some traffic first
	mux.ServeHTTP(httptest.NewRecorder(), testutil.MakeRequest("POST", "/ideas", map[string]string{"text": "Measured"}, nil))
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/ideas/1/upvote", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	for _, name := range []string{
		"ideaboard_ideas_created_total 1",
		"ideaboard_idea_upvotes_total 1",
		`ideaboard_http_requests_total{code="201",route="create_idea"} 1`,
	} {
		if !strings.Contains(body, name) {
			t.Errorf("Expected metrics output to contain %q", name)
		}
	}
}
