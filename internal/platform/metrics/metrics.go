// Package metrics holds the Prometheus collectors the API exports on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every collector. Build one per process with New; tests build their own
// on a fresh registry so registrations never collide.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	// ReviewMutationsTotal counts successful review writes by operation (create/update/delete).
	ReviewMutationsTotal *prometheus.CounterVec

	// AggregateRecomputeTotal counts rating summary recomputations by result (success/failure).
	AggregateRecomputeTotal    *prometheus.CounterVec
	AggregateRecomputeDuration prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests by method, route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by method and route.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "HTTP requests currently being served.",
			},
		),
		ReviewMutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "review_mutations_total",
				Help: "Committed review writes by operation.",
			},
			[]string{"operation"},
		),
		AggregateRecomputeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_rating_recompute_total",
				Help: "Book rating summary recomputations by result.",
			},
			[]string{"result"},
		),
		AggregateRecomputeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "book_rating_recompute_duration_seconds",
				Help:    "Time spent reading reviews and persisting a book's rating summary.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
