// Package metrics provides Prometheus metrics for the matchmaking service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Matchmaking metrics
	matchRuns        prometheus.Counter
	matchRunDuration prometheus.Histogram
	matchErrors      prometheus.Counter
	relaxationLevels *prometheus.CounterVec
	candidatesScored prometheus.Counter
	survivors        *prometheus.GaugeVec

	// Store metrics
	storeQueryDuration prometheus.Histogram
	storeWriteDuration prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics, refreshed by the server's background updater
	systemMemoryBytes    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Registry is the registry all default metrics land on; the server exposes it
// on /metrics.
var Registry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(Registry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchdesk",
		subsystem:        "matchmaking",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total completed match runs",
	})
	m.matchRunDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "End-to-end match run duration in milliseconds",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
	m.matchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_errors_total",
		Help:      "Total failed match runs",
	})
	m.relaxationLevels = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "relaxation_level_total",
		Help:      "Match runs settled per relaxation level",
	}, []string{"level"})
	m.candidatesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_scored_total",
		Help:      "Total candidate assets scored",
	})
	m.survivors = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_survivors",
		Help:      "Surviving assets per category in the most recent run",
	}, []string{"category"})

	m.storeQueryDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "query_duration_milliseconds",
		Help:      "Asset store query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.storeWriteDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "write_duration_milliseconds",
		Help:      "Match run persistence latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method, and status code",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"endpoint", "method", "status_code"})

	m.systemMemoryBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Process heap in use in bytes",
	})
	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordMatchRun records one completed run and its duration.
func RecordMatchRun(durationMs float64) {
	globalManager.matchRuns.Inc()
	globalManager.matchRunDuration.Observe(durationMs)
}

// RecordMatchError increments the failed-run counter.
func RecordMatchError() {
	globalManager.matchErrors.Inc()
}

// RecordRelaxationLevel records the level a run settled on.
func RecordRelaxationLevel(level int) {
	globalManager.relaxationLevels.WithLabelValues(strconv.Itoa(level)).Inc()
}

// RecordCandidatesScored adds to the scored-candidate counter.
func RecordCandidatesScored(n int) {
	globalManager.candidatesScored.Add(float64(n))
}

// UpdateSurvivors sets the survivor gauge for one category.
func UpdateSurvivors(category string, n int) {
	globalManager.survivors.WithLabelValues(category).Set(float64(n))
}

// RecordStoreQueryLatency records an asset query latency in milliseconds.
func RecordStoreQueryLatency(latencyMs float64) {
	globalManager.storeQueryDuration.Observe(latencyMs)
}

// RecordStoreWriteLatency records a run persistence latency in milliseconds.
func RecordStoreWriteLatency(latencyMs float64) {
	globalManager.storeWriteDuration.Observe(latencyMs)
}

// RecordHTTPRequest increments the request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records a request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap-in-use gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryBytes.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}
