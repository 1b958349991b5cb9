// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/idea-board/ideas"
	"github.com/danielhkuo/idea-board/metrics"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
)

// maxBodyBytes bounds POST /ideas bodies; 280 characters fit many times over
const maxBodyBytes = 16 << 10

type IdeaHandler struct {
	svc     *ideas.Service
	metrics *metrics.Metrics
}

func NewIdeaHandler(svc *ideas.Service, m *metrics.Metrics) *IdeaHandler {
	return &IdeaHandler{svc: svc, metrics: m}
}

// ListIdeas handles GET /ideas
func (h *IdeaHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	// Optional; anything unusable falls back to the cap
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.svc.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list ideas", "error", err)
		h.metrics.StorageError("list")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch ideas")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// CreateIdea handles POST /ideas
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	// An empty body is the same as missing text
	var req models.CreateIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	idea, err := h.svc.Create(r.Context(), coerceText(req.Text))
	if err != nil {
		var storageErr *ideas.StorageError
		switch {
		case errors.Is(err, ideas.ErrTextRequired):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Text is required")
		case errors.As(err, &storageErr):
			slog.Error("failed to create idea", "error", err)
			h.metrics.StorageError("create")
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add idea")
		default:
			slog.Error("unexpected create error", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add idea")
		}
		return
	}

	h.metrics.IdeaCreated()
	slog.Info("idea created", "id", idea.ID)

	middleware.JSONResponse(w, http.StatusCreated, idea)
}

// Upvote handles POST /ideas/:id/upvote
func (h *IdeaHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	idea, err := h.svc.Upvote(r.Context(), r.PathValue("id"))
	if err != nil {
		var notFound *ideas.NotFoundError
		var storageErr *ideas.StorageError
		switch {
		case errors.Is(err, ideas.ErrInvalidID):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
		case errors.As(err, &notFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		case errors.As(err, &storageErr):
			slog.Error("failed to upvote idea", "error", err, "id", r.PathValue("id"))
			h.metrics.StorageError("upvote")
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to upvote idea")
		default:
			slog.Error("unexpected upvote error", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to upvote idea")
		}
		return
	}

	h.metrics.IdeaUpvoted()

	middleware.JSONResponse(w, http.StatusOK, idea)
}

// coerceText turns the raw "text" value into a string the way the board's
// web client has always been served: strings as is, numbers by their
// value, true as "true". Falsy and structured values become "".
func coerceText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case c == 't':
		return "true"
	case c == '-' || (c >= '0' && c <= '9'):
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return ""
	}
}
