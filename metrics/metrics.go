// Package metrics exposes origin-shift generation and solving activity as
// Prometheus metrics on a private registry.
//
// All methods are safe on a nil *Metrics, so components accept an optional
// collector without branching at every call site.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Step variants used as the "variant" label.
const (
	VariantUniform  = "uniform"
	VariantWeighted = "weighted"
	VariantMulti    = "multi"
)

// Metrics wraps a registry and the predefined maze collectors.
type Metrics struct {
	registry *prometheus.Registry

	StepsTotal   *prometheus.CounterVec // steps by variant
	ResizesTotal prometheus.Counter     // initialize/resize/reset rebuilds
	Roots        prometheus.Gauge       // current number of roots
	Coverage     prometheus.Gauge       // fraction of cells visited at least once
	PathLength   prometheus.Histogram   // cells per solved path
}

// New builds and registers the collectors under namespace
// (e.g. "originshift" → originshift_steps_total).
func New(namespace string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.StepsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "steps_total",
		Help:      "Origin-shift steps applied, by variant.",
	}, []string{"variant"})
	m.ResizesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resizes_total",
		Help:      "Canonical rebuilds of the maze (initialize, reset, resize).",
	})
	m.Roots = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "roots",
		Help:      "Current number of roots in the maze.",
	})
	m.Coverage = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "visit_coverage_ratio",
		Help:      "Fraction of cells that have held the origin at least once.",
	})
	m.PathLength = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "solve_path_length",
		Help:      "Number of cells in solved paths.",
		Buckets:   prometheus.ExponentialBuckets(2, 2, 12),
	})

	m.registry.MustRegister(m.StepsTotal, m.ResizesTotal, m.Roots, m.Coverage, m.PathLength)

	return m
}

// Registry returns the underlying registry, e.g. for testutil or extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// Handler returns an HTTP handler serving the registry. A nil *Metrics
// serves an empty registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteTextfile dumps the registry in text exposition format to path, for the
// node-exporter textfile collector. Batch runs use it instead of a server.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.registry)
}

// ObserveStep counts one step of the given variant and records the root count after it.
func (m *Metrics) ObserveStep(variant string, roots int) {
	if m == nil {
		return
	}
	m.StepsTotal.WithLabelValues(variant).Inc()
	m.Roots.Set(float64(roots))
}

// ObserveRebuild counts a canonical rebuild; the tree has one root afterwards.
func (m *Metrics) ObserveRebuild() {
	if m == nil {
		return
	}
	m.ResizesTotal.Inc()
	m.Roots.Set(1)
}

// ObserveRoots records the current root count outside of a step.
func (m *Metrics) ObserveRoots(roots int) {
	if m == nil {
		return
	}
	m.Roots.Set(float64(roots))
}

// ObserveCoverage records the visit coverage ratio.
func (m *Metrics) ObserveCoverage(ratio float64) {
	if m == nil {
		return
	}
	m.Coverage.Set(ratio)
}

// ObservePath records the length of a solved path.
func (m *Metrics) ObservePath(cells int) {
	if m == nil {
		return
	}
	m.PathLength.Observe(float64(cells))
}
