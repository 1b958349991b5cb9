// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/idea-board/handlers"
	"github.com/danielhkuo/idea-board/ideas"
	"github.com/danielhkuo/idea-board/metrics"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
)

func NewRouter(svc *ideas.Service, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	ideaHandler := handlers.NewIdeaHandler(svc, m)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{OK: true})
	})

	// Ideas (public, anonymous)
	mux.HandleFunc("GET /ideas", middleware.WithLogging(m.Instrument("list_ideas", ideaHandler.ListIdeas)))
	mux.HandleFunc("POST /ideas", middleware.WithLogging(m.Instrument("create_idea", ideaHandler.CreateIdea)))
	mux.HandleFunc("POST /ideas/{id}/upvote", middleware.WithLogging(m.Instrument("upvote_idea", ideaHandler.Upvote)))

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", m.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("idea-board API v1"))
	})

	return mux
}
