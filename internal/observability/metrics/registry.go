// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track summarization operations
var (
	// SummariesCreatedTotal counts produced summaries by type and length
	SummariesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_created_total",
			Help: "Total number of summaries produced",
		},
		[]string{"type", "length"},
	)

	// SummarizationDuration measures time to produce a summary
	SummarizationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to produce a summary",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"type"},
	)

	// OvershootCorrectionsTotal counts corrective re-passes after a first
	// pass came in too long
	OvershootCorrectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_overshoot_corrections_total",
			Help: "Total number of corrective summarization re-passes",
		},
	)

	// ExternalFallbacksTotal counts external engine failures that fell back
	// to the local abstractive path
	ExternalFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "external_engine_fallbacks_total",
			Help: "Total number of external engine failures handled by local fallback",
		},
	)

	// ExternalModelCallsTotal counts calls to external model providers
	ExternalModelCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_model_calls_total",
			Help: "Total number of external model API calls",
		},
		[]string{"provider", "status"},
	)

	// ExternalModelDuration measures external model API call latency
	ExternalModelDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "external_model_call_duration_seconds",
			Help:    "External model API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"provider"},
	)

	// ExtractionsTotal counts document text extractions by format and status
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_extractions_total",
			Help: "Total number of document text extractions",
		},
		[]string{"format", "status"},
	)

	// SummariesPurgedTotal counts soft-deleted summaries permanently removed
	// by the retention worker
	SummariesPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summaries_purged_total",
			Help: "Total number of summaries permanently purged",
		},
	)
)
