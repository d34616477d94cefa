package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	queriesTotal         *prometheus.CounterVec
	queryDuration        prometheus.Histogram
	staleResponsesTotal  *prometheus.CounterVec
	queryResultCount     *prometheus.GaugeVec
	upstreamRequests     *prometheus.CounterVec
	upstreamDuration     prometheus.Histogram
	circuitBreakerState  *prometheus.GaugeVec
	dashboardLoadsTotal  *prometheus.CounterVec
	transactionsSeeded   prometheus.Counter
	statusLookupsTotal   *prometheus.CounterVec
	shareableLinksIssued prometheus.Counter
}

// NewPrometheusMetrics registers the dashboard metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_queries_total",
				Help: "Total number of transaction listing queries",
			},
			[]string{"source", "status"},
		),
		queryDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_query_duration_milliseconds",
				Help:    "Transaction listing query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		staleResponsesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_query_stale_responses_total",
				Help: "Total number of listing responses discarded because a newer request superseded them",
			},
			[]string{"source"},
		),
		queryResultCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "transaction_query_result_count",
				Help: "Total matching transactions of the last listing query",
			},
			[]string{"source"},
		),
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of requests to the payments API",
			},
			[]string{"endpoint", "status"},
		),
		upstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Payments API request duration in seconds",
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
		dashboardLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_loads_total",
				Help: "Total number of dashboard overview loads",
			},
			[]string{"status"},
		),
		transactionsSeeded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_seeded_total",
				Help: "Total number of generated development transactions",
			},
		),
		statusLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_status_lookups_total",
				Help: "Total number of transaction status lookups",
			},
			[]string{"status"},
		),
		shareableLinksIssued: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "shareable_links_issued_total",
				Help: "Total number of shareable listing URLs returned",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "transaction.query":
		m.queriesTotal.WithLabelValues(tags["source"], status).Inc()
	case "transaction.query.stale":
		m.staleResponsesTotal.WithLabelValues(tags["source"]).Inc()
	case "upstream.request":
		m.upstreamRequests.WithLabelValues(tags["endpoint"], status).Inc()
	case "dashboard.load":
		if status != "" {
			m.dashboardLoadsTotal.WithLabelValues(status).Inc()
		}
	case "transaction.status_lookup":
		if status != "" {
			m.statusLookupsTotal.WithLabelValues(status).Inc()
		}
	case "share_url.issued":
		m.shareableLinksIssued.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.query":
		m.queryDuration.Observe(float64(duration.Milliseconds()))
	case "upstream.request":
		m.upstreamDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction.query.result_count":
		m.queryResultCount.WithLabelValues(tags["source"]).Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "transactions.seeded":
		m.transactionsSeeded.Add(value)
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that drops everything, for the CLI and tests
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
