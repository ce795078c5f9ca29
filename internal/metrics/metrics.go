// Package metrics exposes Prometheus instrumentation for the tracker and the RPC layer.
//
// Every method is safe to call on a nil *Metrics, so components can be built
// without instrumentation in tests and tools.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tutortrack"

// Metrics holds the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	mutations         *prometheus.CounterVec
	sessionsConfirmed prometheus.Counter
	confirmDuplicates prometheus.Counter
	saveFailures      prometheus.Counter
	unsaved           prometheus.Gauge
	rpcDuration       *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry, including the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Domain mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		sessionsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_confirmed_total",
			Help:      "Entries created by confirming today's check-ins.",
		}),
		confirmDuplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirm_duplicates_total",
			Help:      "Check-ins skipped because the student already had an entry that day.",
		}),
		saveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_save_failures_total",
			Help:      "Failed snapshot writes.",
		}),
		unsaved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_unsaved",
			Help:      "1 while the in-memory state is ahead of storage.",
		}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.mutations,
		m.sessionsConfirmed,
		m.confirmDuplicates,
		m.saveFailures,
		m.unsaved,
		m.rpcDuration,
	)

	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveMutation counts one mutation.
func (m *Metrics) ObserveMutation(op, outcome string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op, outcome).Inc()
}

// ObserveConfirm records the result of one confirmation batch.
func (m *Metrics) ObserveConfirm(created, duplicates int) {
	if m == nil {
		return
	}
	m.sessionsConfirmed.Add(float64(created))
	m.confirmDuplicates.Add(float64(duplicates))
}

// ObserveSave records the outcome of a snapshot write.
func (m *Metrics) ObserveSave(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.saveFailures.Inc()
		m.unsaved.Set(1)
		return
	}
	m.unsaved.Set(0)
}

// ObserveRPC records one RPC's latency.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
