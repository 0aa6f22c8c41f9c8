// Package memometrics exports memoization events as Prometheus metrics.
package memometrics

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	_ pure.Observer        = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// Collector counts pure.Event values per memoized function name.
//
// Pass it to pure.WithObserver and register it once with a Prometheus registry.
// All metrics carry a "memo" label holding the name given by pure.WithName.
type Collector struct {
	hits         *prometheus.CounterVec
	misses       *prometheus.CounterVec
	computations *prometheus.CounterVec
	failures     *prometheus.CounterVec
	unkeyable    *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewCollector creates a Collector whose metrics live under namespace.
func NewCollector(namespace string) *Collector {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "memo",
				Name:      name,
				Help:      help,
			},
			[]string{"memo"},
		)
	}
	return &Collector{
		hits:         counter("hits_total", "Total number of calls answered from the cache"),
		misses:       counter("misses_total", "Total number of calls whose key was not cached"),
		computations: counter("computations_total", "Total number of completed computations"),
		failures:     counter("failures_total", "Total number of computations that failed and were not cached"),
		unkeyable:    counter("unkeyable_total", "Total number of calls whose arguments could not form a cache key"),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "memo",
				Name:      "computation_duration_seconds",
				Help:      "Duration of computations, failed ones included",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"memo"},
		),
	}
}

// Register registers c with reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if err := reg.Register(c); err != nil {
		return fmt.Errorf("failed to register memo metrics: %w", err)
	}
	return nil
}

// Observe implements pure.Observer.
func (c *Collector) Observe(e pure.Event) {
	switch e.Kind {
	case pure.EventHit:
		c.hits.WithLabelValues(e.Name).Inc()
	case pure.EventMiss:
		c.misses.WithLabelValues(e.Name).Inc()
	case pure.EventComputation:
		c.computations.WithLabelValues(e.Name).Inc()
		c.duration.WithLabelValues(e.Name).Observe(e.Duration().Seconds())
	case pure.EventFailure:
		c.failures.WithLabelValues(e.Name).Inc()
		c.duration.WithLabelValues(e.Name).Observe(e.Duration().Seconds())
	case pure.EventUnkeyable:
		c.unkeyable.WithLabelValues(e.Name).Inc()
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.hits.Describe(ch)
	c.misses.Describe(ch)
	c.computations.Describe(ch)
	c.failures.Describe(ch)
	c.unkeyable.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.hits.Collect(ch)
	c.misses.Collect(ch)
	c.computations.Collect(ch)
	c.failures.Collect(ch)
	c.unkeyable.Collect(ch)
	c.duration.Collect(ch)
}
