// Package metrics exposes Prometheus collectors for the site backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests, labeled by method, route and code.",
		},
		[]string{"method", "route", "code"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, labeled by method and route.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	botClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edge_classifications_total",
			Help: "Requests to blog routes classified by the bot classifier.",
		},
		[]string{"class"},
	)

	storageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_operations_total",
			Help: "Object storage operations, labeled by provider, operation and result.",
		},
		[]string{"provider", "op", "result"},
	)

	newsletterSubscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_subscriptions_total",
			Help: "Newsletter subscription attempts, labeled by result.",
		},
		[]string{"result"},
	)
)

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveClassification counts a bot/human decision.
func ObserveClassification(isBot bool) {
	class := "human"
	if isBot {
		class = "bot"
	}
	botClassificationsTotal.WithLabelValues(class).Inc()
}

// ObserveStorage counts an object storage call.
func ObserveStorage(provider, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storageOperationsTotal.WithLabelValues(provider, op, result).Inc()
}

// ObserveNewsletter counts a subscription attempt: "created", "duplicate" or "error".
func ObserveNewsletter(result string) {
	newsletterSubscriptionsTotal.WithLabelValues(result).Inc()
}
