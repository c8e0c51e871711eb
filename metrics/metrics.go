// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for solve outcomes.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvlp"

// Collectors groups the solver metrics registered on one registry.
type Collectors struct {
	solves   *prometheus.CounterVec
	pivots   prometheus.Histogram
	duration prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// Errors: registration conflicts (e.g. calling New twice on one registry).
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Counts finished solves by terminal status.",
		}, []string{"status"}),
		pivots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_pivots",
			Help:      "Pivots performed per solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time per solve, decoding excluded.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}

	var i int
	cols := c.all()
	for i = range cols {
		if err := reg.Register(cols[i]); err != nil {
			for _, done := range cols[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Unregister removes the collectors from reg. Registries match collectors by
// descriptor, so call it only with the registry New succeeded on.
// A nil receiver is a no-op.
func (c *Collectors) Unregister(reg prometheus.Registerer) {
	if c == nil {
		return
	}
	for _, col := range c.all() {
		reg.Unregister(col)
	}
}

func (c *Collectors) all() []prometheus.Collector {
	return []prometheus.Collector{c.solves, c.pivots, c.duration}
}

// Observe records one finished solve. A nil receiver is a no-op.
func (c *Collectors) Observe(status string, pivots int, d time.Duration) {
	if c == nil {
		return
	}
	c.solves.WithLabelValues(status).Inc()
	c.pivots.Observe(float64(pivots))
	c.duration.Observe(d.Seconds())
}
