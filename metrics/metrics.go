// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/idea-board/middleware"
)

type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ideasCreated    prometheus.Counter
	upvotes         prometheus.Counter
	storageErrors   *prometheus.CounterVec
}

// New registers the board's collectors on registry.
// Pass a fresh registry per server (and per test).
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ideaboard_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ideaboard_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		ideasCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ideaboard_ideas_created_total",
			Help: "number of ideas created",
		}),
		upvotes: factory.NewCounter(prometheus.CounterOpts{
			Name: "ideaboard_idea_upvotes_total",
			Help: "number of accepted upvotes",
		}),
		storageErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ideaboard_storage_errors_total",
			Help: "store failures by operation",
		}, []string{"op"}),
	}
}

// Instrument records request count and latency under route
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := middleware.NewStatusRecorder(w)

		next(rec, r)

		m.requests.WithLabelValues(route, strconv.Itoa(rec.Status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) IdeaCreated() {
	m.ideasCreated.Inc()
}

func (m *Metrics) IdeaUpvoted() {
	m.upvotes.Inc()
}

func (m *Metrics) StorageError(op string) {
	m.storageErrors.WithLabelValues(op).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
