// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /ideas", middleware.WithLogging(handler))

Each request gets an X-Request-ID (a caller-supplied one is reused). The
completion line carries method, path, status and duration_ms.

# CORS Middleware

Enable cross-origin requests for the board's frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

"*" allows any origin. A comma-separated list only echoes matching origins.
Allows methods GET, POST, OPTIONS with header Content-Type. Preflight
requests are answered with 204.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Text is required")

Errors are written as {"error": "..."}.

Parse JSON request bodies:

	var req models.CreateIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for request logging only.
*/
package middleware
