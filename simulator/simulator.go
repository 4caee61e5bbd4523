// Package simulator implements the driver that threads a trace through a
// replacement policy and emits the per-step record, grounded on
// original_source/core/src/simulator.cpp's control flow.
package simulator

import (
	"github.com/sirupsen/logrus"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/metrics"
	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/policy"
)

// animateGuardrail is the trace length above which an animate request is
// force-downgraded to sparse mode, since the dense log would otherwise be
// too large for the consumer.
const animateGuardrail = 20000

// std is the package-level logger used when Config.Logger is nil, the same
// injection pattern as achu-1612-inmem's log.go package logger.
var std = logrus.New()

// Config configures one simulation run.
type Config struct {
	// Capacity is informational here; the policy passed to Run already
	// carries its own capacity — Config.Capacity is echoed onto Result for
	// callers that only have the Config in hand.
	Capacity int
	// Animate requests a dense, per-step log. If the trace is longer than
	// animateGuardrail operations, it is force-downgraded to sparse mode
	// and Result.AnimateDowngraded is set, rather than degrading silently.
	Animate bool
	// SnapshotEvery selects every Nth step (plus the final step) for the
	// sparse log. Must be >= 1; Run treats <= 0 as 1.
	SnapshotEvery int
	// Metrics, if non-nil, is notified of every hit/miss/eviction in
	// addition to the Stats counters Result always carries.
	Metrics metrics.Sink
	// Logger overrides the package-level std logger for this run.
	Logger *logrus.Logger
}

// Result is everything one simulation run produces.
type Result struct {
	Capacity          int
	Steps             []cachesim.Step // populated iff the run ended up animated
	Snapshots         []cachesim.Step // populated iff the run ended up sparse
	Stats             cachesim.Stats
	AnimateDowngraded bool
}

// Run threads ops through p in trace order, building one Step per
// operation and accumulating Stats. Operations are processed strictly
// sequentially; the Step for op i reflects state after applying op i.
func Run(ops []cachesim.TraceOp, p policy.Policy, cfg Config) Result {
	log := cfg.Logger
	if log == nil {
		log = std
	}
	sink := cfg.Metrics
	if sink == nil {
		sink = metrics.NoopSink{}
	}
	snapshotEvery := cfg.SnapshotEvery
	if snapshotEvery <= 0 {
		snapshotEvery = 1
	}

	animate := cfg.Animate
	downgraded := false
	if animate && len(ops) > animateGuardrail {
		animate = false
		downgraded = true
		log.WithField("ops", len(ops)).Warn("trace exceeds animate guardrail, downgrading to sparse log")
	}

	result := Result{Capacity: cfg.Capacity, AnimateDowngraded: downgraded}

	for i, op := range ops {
		var hit bool
		var evictedKey string
		var evictedOK bool

		switch op.Kind {
		case cachesim.OpGet:
			wasResident := p.IsResident(op.Key)
			value, ok := p.Get(op.Key)
			hit = ok && wasResident
			if hit {
				result.Stats.Hits++
				sink.Hit()
			} else {
				result.Stats.Misses++
				sink.Miss()
			}
			_ = value
		case cachesim.OpPut:
			evictedKey, evictedOK = p.Put(op.Key, op.Value)
			if evictedOK {
				result.Stats.Evictions++
				sink.Eviction()
			}
			hit = false
		}

		step := cachesim.Step{
			Index:         i,
			Op:            op.Kind,
			Key:           op.Key,
			Value:         op.Value,
			Hit:           hit,
			Evicted:       evictedKey,
			EvictedOK:     evictedOK,
			CacheSnapshot: p.Snapshot(),
		}
		p.DescribeMeta(&step)

		log.WithFields(logrus.Fields{
			"index": i,
			"op":    op.Kind.String(),
			"key":   op.Key,
			"hit":   hit,
		}).Debug("applied trace operation")

		if animate {
			result.Steps = append(result.Steps, step)
		} else if i%snapshotEvery == 0 || i == len(ops)-1 {
			result.Snapshots = append(result.Snapshots, step)
		}
	}

	log.WithFields(logrus.Fields{
		"hits":      result.Stats.Hits,
		"misses":    result.Stats.Misses,
		"evictions": result.Stats.Evictions,
	}).Info("simulation run complete")

	return result
}
