// Package host implements the request/response boundary a transport layer
// would sit behind: validate a request, parse its trace, run one
// simulation per requested policy, and collect the results.
package host

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/policy"
	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/simulator"
	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/trace"
)

// ErrInvalidCapacity is returned when Request.Capacity is 0.
var ErrInvalidCapacity = errors.New("invalid capacity")

// ErrUnknownPolicy is returned when a name in Request.Policies isn't one of
// LRU, FIFO, LFU or ARC.
var ErrUnknownPolicy = errors.New("unknown policy")

// ErrTraceParse is returned when Request.TraceText fails to parse, wrapped
// in a *ParseError whose Lines carry the parser's own messages.
var ErrTraceParse = errors.New("trace parse failed")

// defaultSnapshotEvery is applied when Request.SnapshotEvery is 0.
const defaultSnapshotEvery = 1000

// Request is the host boundary's input: a capacity, a set of policies to
// run the same trace through, and the trace text itself.
type Request struct {
	Capacity      uint64   `json:"capacity"`
	Policies      []string `json:"policies,omitempty"` // empty defaults to ["LRU"]
	Animate       bool     `json:"animate"`
	SnapshotEvery uint64   `json:"snapshot_every,omitempty"` // 0 defaults to 1000
	TraceText     string   `json:"trace_text"`
}

// PolicyResult is one policy's slice of a Response.
type PolicyResult struct {
	Policy            string          `json:"policy"`
	Capacity          uint64          `json:"capacity"`
	Steps             []cachesim.Step `json:"steps,omitempty"`
	Snapshots         []cachesim.Step `json:"snapshots,omitempty"`
	Stats             cachesim.Stats  `json:"stats"`
	AnimateDowngraded bool            `json:"animate_downgraded,omitempty"`
}

// Response is the host boundary's output: one PolicyResult per requested
// policy, in the same order as Request.Policies.
type Response struct {
	Results []PolicyResult `json:"results"`
}

// ParseError wraps the trace parser's collected per-line errors.
type ParseError struct {
	Lines []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %d error(s), first: %s", ErrTraceParse, len(e.Lines), firstOrEmpty(e.Lines))
}

func (e *ParseError) Unwrap() error { return ErrTraceParse }

func firstOrEmpty(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// Dispatch validates req, parses its trace, and runs one simulation per
// requested policy. Validation happens entirely before the trace is parsed
// or any policy constructed, matching the "errors surfaced before the
// driver runs" rule.
func Dispatch(ctx context.Context, req Request) (Response, error) {
	if req.Capacity < 1 {
		return Response{}, fmt.Errorf("%w: capacity must be >= 1, got %d", ErrInvalidCapacity, req.Capacity)
	}

	names := req.Policies
	if len(names) == 0 {
		names = []string{string(policy.LRU)}
	}
	for _, n := range names {
		if !isKnownPolicy(n) {
			return Response{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, n)
		}
	}

	parsed := trace.Parse(req.TraceText)
	if !parsed.Success {
		return Response{}, &ParseError{Lines: parsed.Errors}
	}

	snapshotEvery := req.SnapshotEvery
	if snapshotEvery == 0 {
		snapshotEvery = defaultSnapshotEvery
	}

	results := make([]PolicyResult, len(names))
	group, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			p, err := policy.New(policy.Name(name), int(req.Capacity))
			if err != nil {
				return err
			}
			res := simulator.Run(parsed.Operations, p, simulator.Config{
				Capacity:      int(req.Capacity),
				Animate:       req.Animate,
				SnapshotEvery: int(snapshotEvery),
			})
			results[i] = PolicyResult{
				Policy:            name,
				Capacity:          req.Capacity,
				Steps:             res.Steps,
				Snapshots:         res.Snapshots,
				Stats:             res.Stats,
				AnimateDowngraded: res.AnimateDowngraded,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Response{}, err
	}

	return Response{Results: results}, nil
}

func isKnownPolicy(name string) bool {
	switch policy.Name(name) {
	case policy.LRU, policy.FIFO, policy.LFU, policy.ARC:
		return true
	default:
		return false
	}
}
