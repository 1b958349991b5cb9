// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Idea Board API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, m)

# Endpoints

Health:

	GET /health - {"ok":true}

Ideas (public, anonymous):

	GET  /ideas             - Ranked list, at most 200
	POST /ideas             - Submit an idea
	POST /ideas/{id}/upvote - Add one vote

Operations:

	GET /metrics - Prometheus metrics
	GET /        - API banner

Idea routes are wrapped with request logging and metrics. CORS is applied
around the whole mux by the server.
*/
package router
