// Package metrics exposes solver progress as Prometheus metrics on a
// dedicated registry. A *Metrics satisfies search.Observer.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/cvrp/search"
)

// Solution outcomes for RecordSolution.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusFailed  = "failed"
)

// Metrics owns a registry and the solver collectors registered on it.
type Metrics struct {
	// Registry is the dedicated registry; nothing is added to the default one.
	Registry *prometheus.Registry

	Trials        prometheus.Counter
	GraphBuilds   *prometheus.CounterVec
	PartitionTime prometheus.Histogram
	PartitionBest *prometheus.GaugeVec
	Solutions     *prometheus.CounterVec
}

var _ search.Observer = (*Metrics)(nil)

// New returns Metrics with every collector registered, plus the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Trials: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "cvrp_trials_total", Help: "Randomized construction trials run."},
		),
		GraphBuilds: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "cvrp_graph_builds_total", Help: "Auxiliary graphs built, by strategy."},
			[]string{"strategy"},
		),
		PartitionTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cvrp_partition_seconds",
				Help:    "Wall time of one partition search in seconds.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),
		PartitionBest: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "cvrp_partition_best_cost", Help: "Best trial cost per partition."},
			[]string{"partition"},
		),
		Solutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "cvrp_solutions_total", Help: "Solved instances by outcome."},
			[]string{"status"},
		),
	}
	m.Registry.MustRegister(m.Trials, m.GraphBuilds, m.PartitionTime, m.PartitionBest, m.Solutions)
	m.Registry.MustRegister(collectors.NewGoCollector())
	m.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// GraphBuilt implements search.Observer.
func (m *Metrics) GraphBuilt(strategy string) { m.GraphBuilds.WithLabelValues(strategy).Inc() }

// TrialsDone implements search.Observer.
func (m *Metrics) TrialsDone(n int) { m.Trials.Add(float64(n)) }

// PartitionDone implements search.Observer.
func (m *Metrics) PartitionDone(res search.PartitionResult) {
	m.PartitionTime.Observe(res.Elapsed.Seconds())
	m.PartitionBest.WithLabelValues(strconv.Itoa(res.Index)).Set(res.Best.Cost)
}

// RecordSolution counts one solved instance under status.
func (m *Metrics) RecordSolution(status string) { m.Solutions.WithLabelValues(status).Inc() }

// WriteTextfile writes the registry in text exposition format to path,
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
