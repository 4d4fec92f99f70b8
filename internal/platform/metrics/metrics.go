package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var durationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Metrics holds the Prometheus metrics shared by every dataset module.
type Metrics struct {
	QueryDuration   *prometheus.HistogramVec
	QueryFailures   *prometheus.CounterVec
	LookupOutcomes  *prometheus.CounterVec
	CacheResults    *prometheus.CounterVec
	RateLimited     *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	ChartRenderings *prometheus.CounterVec
}

// New registers all metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers all metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dsld_query_duration_seconds",
			Help:    "Duration of dataset queries by dataset and operation",
			Buckets: durationBuckets,
		}, []string{"dataset", "operation"}),
		QueryFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dsld_query_failures_total",
			Help: "Dataset queries that failed and were degraded to empty data",
		}, []string{"dataset", "operation"}),
		LookupOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dsld_lookup_outcomes_total",
			Help: "Identifier lookups by dataset and outcome (invalid, empty, found, error)",
		}, []string{"dataset", "outcome"}),
		CacheResults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dsld_option_cache_total",
			Help: "Option cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dsld_rate_limited_total",
			Help: "Requests rejected by the lookup rate limiter",
		}, []string{"route"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dsld_http_request_duration_seconds",
			Help:    "HTTP request duration by route pattern and status class",
			Buckets: durationBuckets,
		}, []string{"route", "method", "status"}),
		ChartRenderings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dsld_chart_renderings_total",
			Help: "Server-side chart renderings by format",
		}, []string{"format"}),
	}
}

// ObserveQuery records the duration of a dataset query.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveQuery(dataset, operation string, start time.Time) {
	if m == nil {
		return
	}
	m.QueryDuration.WithLabelValues(dataset, operation).Observe(time.Since(start).Seconds())
}

// IncrementQueryFailure counts a query that degraded to empty data.
func (m *Metrics) IncrementQueryFailure(dataset, operation string) {
	if m == nil {
		return
	}
	m.QueryFailures.WithLabelValues(dataset, operation).Inc()
}

// IncrementLookup counts an identifier lookup outcome.
func (m *Metrics) IncrementLookup(dataset, outcome string) {
	if m == nil {
		return
	}
	m.LookupOutcomes.WithLabelValues(dataset, outcome).Inc()
}

// IncrementCache counts an option cache result.
func (m *Metrics) IncrementCache(result string) {
	if m == nil {
		return
	}
	m.CacheResults.WithLabelValues(result).Inc()
}

// IncrementRateLimited counts a rejected lookup request.
func (m *Metrics) IncrementRateLimited(route string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(route).Inc()
}

// ObserveHTTP records the duration of an HTTP request.
func (m *Metrics) ObserveHTTP(route, method, status string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(route, method, status).Observe(time.Since(start).Seconds())
}

// IncrementChartRendering counts a rendered chart image.
func (m *Metrics) IncrementChartRendering(format string) {
	if m == nil {
		return
	}
	m.ChartRenderings.WithLabelValues(format).Inc()
}
