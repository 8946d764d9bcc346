// Package metrics defines the Prometheus instrumentation for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by method and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ventory_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "status"})

	// RequestDuration observes request latency in seconds by method.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ventory_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// AuthFailuresTotal counts requests rejected by the access guard.
	AuthFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ventory_auth_failures_total",
		Help: "Total number of requests rejected for missing or invalid tokens.",
	})

	// TokensIssuedTotal counts successfully issued login tokens.
	TokensIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ventory_tokens_issued_total",
		Help: "Total number of login tokens issued.",
	})
)
