package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, path and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and path
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// SalesRecordedTotal counts sale submissions accepted by the API
	SalesRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_recorded_total",
			Help: "Total number of sales recorded",
		},
	)

	// SalesReviewedTotal counts admin review decisions by resulting status
	SalesReviewedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_reviewed_total",
			Help: "Total number of admin sale reviews by resulting status",
		},
		[]string{"status"},
	)

	// LiveFeedSubscribers gauges currently connected live history streams
	LiveFeedSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "live_feed_subscribers",
			Help: "Currently connected live sales feed subscribers",
		},
	)
)
