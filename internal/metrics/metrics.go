// Package metrics exposes Prometheus counters describing generation runs.
// Batch invocations export them with the textfile format (see WriteTextfile).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records activity of the graph builder, the combiner and the writer.
// It satisfies graph.Recorder and combine.Recorder.
type Collector struct {
	registry *prometheus.Registry

	vertices     *prometheus.CounterVec
	combinations prometheus.Counter
	members      prometheus.Histogram
	cacheHits    prometheus.Counter
	excluded     prometheus.Counter
	files        prometheus.Counter
	runs         *prometheus.CounterVec
}

// New creates a collector registered on its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		vertices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "staged_vertices_expanded_total",
			Help: "Number of grammar vertices expanded",
		}, []string{"kind"}),
		combinations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "staged_combinations_total",
			Help: "Number of union interfaces synthesized",
		}),
		members: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "staged_combination_members",
			Help:    "Number of members kept in synthesized unions",
			Buckets: prometheus.LinearBuckets(2, 1, 8),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "staged_combination_cache_hits_total",
			Help: "Number of combinations served from the run cache",
		}),
		excluded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "staged_alternatives_excluded_total",
			Help: "Number of alternatives dropped because others subsume them",
		}),
		files: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "staged_files_written_total",
			Help: "Number of generated files written",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "staged_runs_total",
			Help: "Number of generation runs by outcome",
		}, []string{"outcome"}),
	}
	c.registry.MustRegister(c.vertices, c.combinations, c.members, c.cacheHits, c.excluded, c.files, c.runs)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// VertexExpanded implements graph.Recorder.
func (c *Collector) VertexExpanded(terminal bool) {
	kind := "inner"
	if terminal {
		kind = "terminal"
	}
	c.vertices.WithLabelValues(kind).Inc()
}

// CacheHit implements combine.Recorder.
func (c *Collector) CacheHit() {
	c.cacheHits.Inc()
}

// Combined implements combine.Recorder.
func (c *Collector) Combined(members int) {
	c.combinations.Inc()
	c.members.Observe(float64(members))
}

// Excluded implements combine.Recorder.
func (c *Collector) Excluded(n int) {
	c.excluded.Add(float64(n))
}

// FileWritten counts a generated file.
func (c *Collector) FileWritten() {
	c.files.Inc()
}

// RunFinished counts a run by outcome.
func (c *Collector) RunFinished(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	c.runs.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes every metric in the Prometheus text format to path,
// ready for a node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
