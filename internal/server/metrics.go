package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/mstrace/core"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	TracesTotal      *prometheus.CounterVec
	TraceSteps       *prometheus.HistogramVec
	TruncationsTotal *prometheus.CounterVec
	CacheHitsTotal   prometheus.Counter
	RequestsTotal    *prometheus.CounterVec
}

// NewMetrics registers the Go and process collectors plus the mstrace set.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}
	m.TracesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mstrace_traces_total",
		Help: "Traces built, by engine and mode.",
	}, []string{"engine", "mode"})
	m.TraceSteps = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mstrace_trace_steps",
		Help:    "Steps per built trace.",
		Buckets: prometheus.ExponentialBuckets(4, 2, 12),
	}, []string{"engine"})
	m.TruncationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mstrace_truncations_total",
		Help: "Summary steps emitted because a narration budget ran out.",
	}, []string{"engine"})
	m.CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mstrace_cache_hits_total",
		Help: "Trace requests answered from the memo.",
	})
	m.RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mstrace_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"route", "status"})

	reg.MustRegister(m.TracesTotal, m.TraceSteps, m.TruncationsTotal, m.CacheHitsTotal, m.RequestsTotal)

	return m
}

// Registry exposes the registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// observeTrace records one freshly built trace.
func (m *Metrics) observeTrace(engine, mode string, steps []core.Step) {
	m.TracesTotal.WithLabelValues(engine, mode).Inc()
	m.TraceSteps.WithLabelValues(engine).Observe(float64(len(steps)))
	for _, s := range steps {
		if s.Kind.Summary() {
			m.TruncationsTotal.WithLabelValues(engine).Inc()
		}
	}
}
