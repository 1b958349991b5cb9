// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus metrics for the API.

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	mux.HandleFunc("GET /ideas", m.Instrument("list_ideas", handler))
	mux.Handle("GET /metrics", m.Handler())

# Metrics

  - ideaboard_http_requests_total{route,code}
  - ideaboard_http_request_duration_seconds{route}
  - ideaboard_ideas_created_total
  - ideaboard_idea_upvotes_total
  - ideaboard_storage_errors_total{op}

main also registers the Go, process and database/sql pool collectors on
the same registry.
*/
package metrics
