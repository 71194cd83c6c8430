package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planscan_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planscan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	processRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planscan_process_requests_total",
			Help: "Total number of floor-plan processing requests",
		},
		[]string{"status"}, // success, error, cached
	)

	processDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planscan_process_duration_seconds",
			Help:    "Floor-plan processing duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	elementsDetected = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planscan_elements_detected",
			Help:    "Number of classified elements per request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"category"}, // walls, doors, windows, rooms
	)

	uploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planscan_upload_size_bytes",
			Help:    "Size of uploaded images in bytes",
			Buckets: []float64{1024, 10 * 1024, 100 * 1024, 1024 * 1024, 10 * 1024 * 1024, 50 * 1024 * 1024},
		},
	)

	cacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planscan_cache_requests_total",
			Help: "Result cache lookups",
		},
		[]string{"outcome"}, // hit, miss, error
	)
)
