// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventhub_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eventhub_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventhub_auth_attempts_total",
		Help: "Login and registration attempts by outcome",
	}, []string{"action", "result"})

	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventhub_event_registrations_total",
		Help: "Event registrations by outcome",
	}, []string{"result"})
)
