package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the application's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	StorageOperationsTotal   *prometheus.CounterVec
	StorageOperationDuration *prometheus.HistogramVec
	SearchesTotal            *prometheus.CounterVec
	SearchOccurrences        prometheus.Histogram
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		StorageOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bucket_manager_storage_operations_total",
				Help: "Total number of object storage calls",
			},
			[]string{"operation", "status"},
		),
		StorageOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bucket_manager_storage_operation_duration_seconds",
				Help:    "Duration of object storage calls in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bucket_manager_searches_total",
				Help: "Total number of word searches by outcome",
			},
			[]string{"status"},
		),
		SearchOccurrences: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bucket_manager_search_occurrences",
				Help:    "Occurrences found per successful search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStorage records one storage call.
func (m *Metrics) ObserveStorage(operation string, start time.Time, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	m.StorageOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveSearch records one search outcome.
func (m *Metrics) ObserveSearch(status string, occurrences int) {
	m.SearchesTotal.WithLabelValues(status).Inc()
	if status == StatusSuccess {
		m.SearchOccurrences.Observe(float64(occurrences))
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
