// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gradebook"

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec
	GradeWrites *prometheus.CounterVec
	ImportLines *prometheus.CounterVec
	Students    prometheus.Gauge
	Courses     prometheus.Gauge
}

// New creates and registers all collectors, plus the Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		GradeWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grade_writes_total",
			Help:      "Grade writes by outcome (recorded, rejected, invalid).",
		}, []string{"outcome"}),
		ImportLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_lines_total",
			Help:      "Imported lines by outcome (applied, rejected, malformed, ignored).",
		}, []string{"outcome"}),
		Students: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "students",
			Help:      "Students held in the registry.",
		}),
		Courses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "courses",
			Help:      "Courses held in the registry.",
		}),
	}

	m.registry.MustRegister(
		m.RPCRequests,
		m.RPCDuration,
		m.GradeWrites,
		m.ImportLines,
		m.Students,
		m.Courses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
