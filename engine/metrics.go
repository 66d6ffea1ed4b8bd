package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the Prometheus instrumentation shared by every engine built with it.
// A nil *Metrics records nothing.
type Metrics struct {
	// Queries counts engine queries by op and result (hit, miss, or a walk outcome).
	Queries *prometheus.CounterVec
	// QueryDuration observes query latency by op.
	QueryDuration *prometheus.HistogramVec
	// Builds counts engine builds by result (ok, error).
	Builds *prometheus.CounterVec
	// Vertices, Edges and Definitions describe the most recently built engine.
	Vertices    prometheus.Gauge
	Edges       prometheus.Gauge
	Definitions prometheus.Gauge
}

// NewMetrics registers the engine collectors with reg. Registering twice on the
// same registerer panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "synonet",
			Name:      "queries_total",
			Help:      "Engine queries by operation and result",
		}, []string{"op", "result"}),
		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "synonet",
			Name:      "query_duration_seconds",
			Help:      "Engine query latency by operation",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"op"}),
		Builds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "synonet",
			Name:      "builds_total",
			Help:      "Engine builds by result",
		}, []string{"result"}),
		Vertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "synonet",
			Name:      "graph_vertices",
			Help:      "Vertices in the most recently built graph",
		}),
		Edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "synonet",
			Name:      "graph_edges",
			Help:      "Edges in the most recently built graph",
		}),
		Definitions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "synonet",
			Name:      "dictionary_definitions",
			Help:      "Entries in the most recently loaded dictionary",
		}),
	}
}

func (m *Metrics) query(op, result string, start time.Time) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(op, result).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) built(s Stats) {
	if m == nil {
		return
	}
	m.Builds.WithLabelValues("ok").Inc()
	m.Vertices.Set(float64(s.Vertices))
	m.Edges.Set(float64(s.Edges))
	m.Definitions.Set(float64(s.Definitions))
}

func (m *Metrics) buildFailed() {
	if m == nil {
		return
	}
	m.Builds.WithLabelValues("error").Inc()
}

func hitOrMiss(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}
