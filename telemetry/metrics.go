package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the counters and histograms a single Explore run updates.
// All are registered lazily against a caller-supplied registry so library
// users never pay for Prometheus unless they opt in.
type Metrics struct {
	HopsTotal      prometheus.Counter
	NodesVisited   prometheus.Counter
	EdgesKept      prometheus.Counter
	BackendErrors  prometheus.Counter
	HopDuration    prometheus.Histogram
}

// NewMetrics registers a fresh Metrics set on reg. Pass prometheus.NewRegistry()
// for an isolated registry in tests, or prometheus.DefaultRegisterer in a
// long-running process.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HopsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "spikyball",
			Name:      "hops_total",
			Help:      "Number of hop expansions completed.",
		}),
		NodesVisited: f.NewCounter(prometheus.CounterOpts{
			Namespace: "spikyball",
			Name:      "nodes_visited_total",
			Help:      "Number of distinct nodes visited across all hops.",
		}),
		EdgesKept: f.NewCounter(prometheus.CounterOpts{
			Namespace: "spikyball",
			Name:      "edges_kept_total",
			Help:      "Number of edges retained after policy filtering.",
		}),
		BackendErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: "spikyball",
			Name:      "backend_errors_total",
			Help:      "Number of transient backend errors absorbed by the driver.",
		}),
		HopDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "spikyball",
			Name:      "hop_duration_seconds",
			Help:      "Wall-clock duration of a single hop expansion.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
