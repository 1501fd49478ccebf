// ============================================================================
// Coordinator Metrics - Prometheus Monitoring
// ============================================================================
//
// Package: internal/metrics
// Purpose: Collect and expose system metrics for Prometheus monitoring
//
// Metric Categories:
//
//   1. Session Counters - Cumulative, monotonically increasing:
//      - coordinator_sessions_created_total
//      - coordinator_sessions_ended_total
//      - coordinator_checkin_timeouts_total
//      - coordinator_rollback_total
//      - coordinator_recreate_total
//      - coordinator_snapshot_total
//      - coordinator_not_ready_total
//
//   2. Performance Metrics (Histogram):
//      - coordinator_job_latency_seconds, labeled by RPC method
//
//   3. Status Metrics (Gauge) - Instantaneous values:
//      - coordinator_sessions_active
//      - coordinator_jobs_inflight
//
// Prometheus Query Examples:
//
//   # Sessions created per minute
//   rate(coordinator_sessions_created_total[1m])
//
//   # 95th percentile job latency by method
//   histogram_quantile(0.95, sum(rate(coordinator_job_latency_seconds_bucket[5m])) by (le, method))
//
//   # Checkin timeout rate
//   rate(coordinator_checkin_timeouts_total[5m])
//
// HTTP Endpoint:
//   Exposed via /metrics, scraped by Prometheus. Format: Prometheus text.
//
// ============================================================================

package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements both registry.MetricsSink and dispatcher.MetricsSink.
type Collector struct {
	sessionsActive       prometheus.Gauge
	sessionsCreatedTotal prometheus.Counter
	sessionsEndedTotal   prometheus.Counter
	checkinTimeoutsTotal prometheus.Counter
	rollbackTotal        prometheus.Counter
	recreateTotal        prometheus.Counter
	snapshotTotal        prometheus.Counter
	jobLatency           *prometheus.HistogramVec
	jobsInFlight         prometheus.Gauge
	notReadyTotal        prometheus.Counter
}

// NewCollector builds and registers every coordinator metric.
func NewCollector() *Collector {
	c := &Collector{
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coordinator_sessions_active",
			Help: "Current number of live sessions in the registry",
		}),
		sessionsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coordinator_sessions_created_total",
			Help: "Total number of sessions created",
		}),
		sessionsEndedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coordinator_sessions_ended_total",
			Help: "Total number of sessions ended",
		}),
		checkinTimeoutsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coordinator_checkin_timeouts_total",
			Help: "Total number of worker check-in waits that timed out",
		}),
		rollbackTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coordinator_rollback_total",
			Help: "Total number of session rollbacks performed",
		}),
		recreateTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coordinator_recreate_total",
			Help: "Total number of session recreations performed",
		}),
		snapshotTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coordinator_snapshot_total",
			Help: "Total number of session snapshots taken",
		}),
		jobLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coordinator_job_latency_seconds",
			Help:    "Dispatcher job latency in seconds, by RPC method",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		jobsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coordinator_jobs_inflight",
			Help: "Current number of in-flight dispatcher jobs",
		}),
		notReadyTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coordinator_not_ready_total",
			Help: "Total number of NotReady responses returned to clients",
		}),
	}

	prometheus.MustRegister(
		c.sessionsActive,
		c.sessionsCreatedTotal,
		c.sessionsEndedTotal,
		c.checkinTimeoutsTotal,
		c.rollbackTotal,
		c.recreateTotal,
		c.snapshotTotal,
		c.jobLatency,
		c.jobsInFlight,
		c.notReadyTotal,
	)

	return c
}

// --- registry.MetricsSink -------------------------------------------------

func (c *Collector) SessionCreated()      { c.sessionsCreatedTotal.Inc() }
func (c *Collector) SessionEnded()        { c.sessionsEndedTotal.Inc() }
func (c *Collector) CheckinTimeout()      { c.checkinTimeoutsTotal.Inc() }
func (c *Collector) Rollback()            { c.rollbackTotal.Inc() }
func (c *Collector) Recreate()            { c.recreateTotal.Inc() }
func (c *Collector) SnapshotTaken()       { c.snapshotTotal.Inc() }
func (c *Collector) ActiveSessions(n int) { c.sessionsActive.Set(float64(n)) }

// --- dispatcher.MetricsSink ------------------------------------------------

func (c *Collector) JobLatency(method string, seconds float64) {
	c.jobLatency.WithLabelValues(method).Observe(seconds)
}

func (c *Collector) JobsInFlight(delta int) {
	c.jobsInFlight.Add(float64(delta))
}

func (c *Collector) NotReady() {
	c.notReadyTotal.Inc()
}

// StartServer starts the Prometheus metrics HTTP server on the given port.
func StartServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, mux)
}
