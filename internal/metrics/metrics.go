// Package metrics holds the prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mellab_http_requests_total",
		Help: "HTTP requests handled, by route and status code.",
	}, []string{"route", "status"})

	// HTTPDuration observes request latency by route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mellab_http_request_duration_seconds",
		Help:    "HTTP request latency, by route.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"route"})

	// ProviderRequests counts outbound provider calls by provider and outcome
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mellab_provider_requests_total",
		Help: "Outbound provider calls, by provider and outcome.",
	}, []string{"provider", "outcome"})

	// AnalysisFallbacks counts analyses that degraded to their fallback payload
	AnalysisFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mellab_analysis_fallbacks_total",
		Help: "Analyses answered with the fallback payload, by mode.",
	}, []string{"mode"})
)
