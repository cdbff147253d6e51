package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	sessionsMounted     *prometheus.CounterVec
	sessionsActive      prometheus.Gauge
	screenOperations    *prometheus.CounterVec
	collectionLoads     *prometheus.CounterVec
	collectionLoadTime  prometheus.Histogram
	viewComputeTime     prometheus.Histogram
	exportsTotal        *prometheus.CounterVec
	exportRows          prometheus.Histogram
	membersAPIRequests  *prometheus.CounterVec
	membersAPIDuration  prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
	bulkEmailsTotal     *prometheus.CounterVec
}

// NewPrometheusMetrics registers the dashboard metrics with reg. A nil reg
// uses the default registry served on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		sessionsMounted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screen_sessions_mounted_total",
				Help: "Total number of screen sessions mounted",
			},
			[]string{"screen"},
		),
		sessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "screen_sessions_active",
				Help: "Current number of mounted screen sessions",
			},
		),
		screenOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screen_operations_total",
				Help: "Total number of binder operations by screen, operation and outcome",
			},
			[]string{"screen", "operation", "status"},
		),
		collectionLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collection_loads_total",
				Help: "Total number of initial collection fetches",
			},
			[]string{"screen", "status"},
		),
		collectionLoadTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "collection_load_duration_milliseconds",
				Help:    "Initial collection fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		viewComputeTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "derived_view_duration_seconds",
				Help:    "Time spent filtering, sorting, paginating and aggregating a view",
				Buckets: prometheus.DefBuckets,
			},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv_exports_total",
				Help: "Total number of CSV exports",
			},
			[]string{"screen"},
		),
		exportRows: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "csv_export_rows",
				Help:    "Rows written per CSV export",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		membersAPIRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "members_api_requests_total",
				Help: "Total number of members API requests",
			},
			[]string{"method", "status"},
		),
		membersAPIDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "members_api_request_duration_seconds",
				Help:    "Members API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		bulkEmailsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bulk_emails_total",
				Help: "Total number of bulk email jobs by outcome",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	screen := tags["screen"]
	status := tags["status"]

	switch name {
	case "session_mounted":
		m.sessionsMounted.WithLabelValues(screen).Inc()
	case "screen_operation":
		m.screenOperations.WithLabelValues(screen, tags["operation"], status).Inc()
	case "collection_load":
		m.collectionLoads.WithLabelValues(screen, status).Inc()
	case "csv_export":
		m.exportsTotal.WithLabelValues(screen).Inc()
	case "members_api_request":
		m.membersAPIRequests.WithLabelValues(tags["method"], status).Inc()
	case "bulk_email":
		if status != "" {
			m.bulkEmailsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "collection_load":
		m.collectionLoadTime.Observe(float64(duration.Milliseconds()))
	case "derived_view":
		m.viewComputeTime.Observe(duration.Seconds())
	case "members_api_request":
		m.membersAPIDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "sessions_active":
		m.sessionsActive.Set(value)
	case "csv_export_rows":
		m.exportRows.Observe(value)
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
