// Package metrics provides Prometheus metrics for the scouting pipeline and its HTTP API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion
	recordsLoaded    *prometheus.CounterVec
	recordsSkipped   *prometheus.CounterVec
	duplicateRecords *prometheus.CounterVec
	malformedValues  *prometheus.CounterVec

	// Grading
	profilesGraded          *prometheus.CounterVec
	degenerateDistributions *prometheus.CounterVec
	seasonGradingSeconds    *prometheus.HistogramVec
	populationSize          *prometheus.GaugeVec

	// Reloads
	reloads        *prometheus.CounterVec
	lastReloadUnix prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryBytes prometheus.Gauge
	systemGoroutines  prometheus.Gauge
	systemGCPauseMs   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scout",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.recordsLoaded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_loaded_total",
		Help:      "Raw per-player-season records read from the input datasets",
	}, []string{"role"})

	m.recordsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_skipped_total",
		Help:      "Rows dropped because identity fields were missing or unparseable",
	}, []string{"role"})

	m.duplicateRecords = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_duplicate_total",
		Help:      "Rows dropped because the (player, season) key was already loaded",
	}, []string{"role"})

	m.malformedValues = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "malformed_values_total",
		Help:      "Raw values that could not be coerced to a number and were treated as missing",
	}, []string{"role", "column"})

	m.profilesGraded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_graded_total",
		Help:      "Player grade profiles produced",
	}, []string{"role"})

	m.degenerateDistributions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "degenerate_distributions_total",
		Help:      "Metric baselines with fewer than two values or zero variance (neutral grade fallback)",
	}, []string{"role"})

	m.seasonGradingSeconds = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "season_grading_seconds",
		Help:      "Wall time to grade and aggregate one season",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"phase"})

	m.populationSize = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "population_size",
		Help:      "Graded players per season and role in the current snapshot",
	}, []string{"role", "season"})

	m.reloads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reloads_total",
		Help:      "Data reloads by outcome",
	}, []string{"result"})

	m.lastReloadUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_reload_timestamp_seconds",
		Help:      "Unix time of the last successful reload",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "HTTP errors by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_alloc_bytes",
		Help:      "Heap bytes allocated and still in use",
	})

	m.systemGoroutines = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseMs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "gc_pause_avg_milliseconds",
		Help:      "Average GC pause since process start",
	})
}

// RecordRecordLoaded counts one ingested raw record.
func RecordRecordLoaded(role string) {
	globalManager.recordsLoaded.WithLabelValues(role).Inc()
}

// RecordRecordSkipped counts one row dropped for bad identity fields.
func RecordRecordSkipped(role string) {
	globalManager.recordsSkipped.WithLabelValues(role).Inc()
}

// RecordDuplicateRecord counts one duplicate (player, season) row.
func RecordDuplicateRecord(role string) {
	globalManager.duplicateRecords.WithLabelValues(role).Inc()
}

// RecordMalformedValue counts one raw value coerced to missing.
func RecordMalformedValue(role, column string) {
	globalManager.malformedValues.WithLabelValues(role, column).Inc()
}

// RecordProfilesGraded adds n graded profiles for role.
func RecordProfilesGraded(role string, n int) {
	globalManager.profilesGraded.WithLabelValues(role).Add(float64(n))
}

// RecordDegenerateDistribution counts one baseline that fell back to the neutral grade.
func RecordDegenerateDistribution(role string) {
	globalManager.degenerateDistributions.WithLabelValues(role).Inc()
}

// ObserveSeasonPhase records how long a pipeline phase took for one season.
func ObserveSeasonPhase(phase string, seconds float64) {
	globalManager.seasonGradingSeconds.WithLabelValues(phase).Observe(seconds)
}

// UpdatePopulationSize sets the graded population for a season and role.
func UpdatePopulationSize(role string, season, size int) {
	globalManager.populationSize.WithLabelValues(role, strconv.Itoa(season)).Set(float64(size))
}

// RecordReload counts a reload attempt; result is "ok", "unchanged" or "error".
func RecordReload(result string, unix float64) {
	globalManager.reloads.WithLabelValues(result).Inc()
	if result == "ok" {
		globalManager.lastReloadUnix.Set(unix)
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the allocated heap size.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryBytes.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutines.Set(float64(n))
}

// RecordSystemGCPauseTime sets the average GC pause.
func RecordSystemGCPauseTime(ms float64) {
	globalManager.systemGCPauseMs.Set(ms)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
