// Package metrics provides an optional observability sink the driver
// notifies on hit/miss/eviction, grounded on
// IvanBrykalov-shardcache/cache/metrics.go's Metrics/NoopMetrics pair.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
)

// Sink receives one notification per hit/miss/eviction from a simulation
// run, in addition to (not instead of) the Stats counters the run always
// returns.
type Sink interface {
	Hit()
	Miss()
	Eviction()
}

// NoopSink discards every notification. It is the default when no sink is
// configured.
type NoopSink struct{}

func (NoopSink) Hit()      {}
func (NoopSink) Miss()     {}
func (NoopSink) Eviction() {}

var _ Sink = NoopSink{}

// PromSink counts hits, misses and evictions with Prometheus counters. It
// never registers with the default registerer and never starts a network
// listener — WriteText renders the current values to a caller-supplied
// writer, so embedding it never implies networked operation.
type PromSink struct {
	registry  *prometheus.Registry
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
}

var _ Sink = (*PromSink)(nil)

// NewPromSink constructs a PromSink labeled with the given policy name,
// registered only with its own private registry.
func NewPromSink(policyName string) *PromSink {
	constLabels := prometheus.Labels{"policy": policyName}
	s := &PromSink{
		registry: prometheus.NewRegistry(),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "cachesim",
			Name:        "hits_total",
			Help:        "GET operations resolved by a resident key",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "cachesim",
			Name:        "misses_total",
			Help:        "GET operations resolved by an absent or ghost key",
			ConstLabels: constLabels,
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "cachesim",
			Name:        "evictions_total",
			Help:        "PUT operations that evicted a resident key",
			ConstLabels: constLabels,
		}),
	}
	s.registry.MustRegister(s.hits, s.misses, s.evictions)
	return s
}

func (s *PromSink) Hit()      { s.hits.Inc() }
func (s *PromSink) Miss()     { s.misses.Inc() }
func (s *PromSink) Eviction() { s.evictions.Inc() }

// AddStats adds an already-accumulated Stats to the three counters in
// one call each, for callers (the CLI's --metrics flag) rendering a
// finished run's totals rather than notifying as a simulation progresses.
func (s *PromSink) AddStats(stats cachesim.Stats) {
	s.hits.Add(float64(stats.Hits))
	s.misses.Add(float64(stats.Misses))
	s.evictions.Add(float64(stats.Evictions))
}

// WriteText renders the current counter values in the Prometheus text
// exposition format to w. This is the only way the values leave the
// process; no HTTP handler is registered anywhere in this package.
func (s *PromSink) WriteText(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
