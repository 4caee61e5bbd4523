package host

import (
	"context"
	"errors"
	"testing"

	"github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator/policy"
)

func fail(t *testing.T, msg string, args ...any) {
	t.Logf(msg, args...)
	t.FailNow()
}

const sampleTrace = "PUT A a\nPUT B b\nGET A\nPUT C c\nGET B\nGET C\n"

func TestDispatch_DefaultsToLRU(t *testing.T) {
	resp, err := Dispatch(context.Background(), Request{Capacity: 2, TraceText: sampleTrace})
	if err != nil {
		fail(t, "unexpected error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Policy != string(policy.LRU) {
		fail(t, "expected a single LRU result, got %+v", resp.Results)
	}
}

func TestDispatch_RunsOnePolicyPerRequestedName(t *testing.T) {
	resp, err := Dispatch(context.Background(), Request{
		Capacity: 2,
		Policies: []string{"LRU", "FIFO", "LFU", "ARC"},
		TraceText: sampleTrace,
	})
	if err != nil {
		fail(t, "unexpected error: %v", err)
	}
	if len(resp.Results) != 4 {
		fail(t, "expected 4 results, got %d", len(resp.Results))
	}
	for i, name := range []string{"LRU", "FIFO", "LFU", "ARC"} {
		if resp.Results[i].Policy != name {
			fail(t, "result %d: expected policy %s, got %s (order must match Request.Policies)", i, name, resp.Results[i].Policy)
		}
	}
}

func TestDispatch_InvalidCapacity(t *testing.T) {
	_, err := Dispatch(context.Background(), Request{Capacity: 0, TraceText: sampleTrace})
	if !errors.Is(err, ErrInvalidCapacity) {
		fail(t, "expected ErrInvalidCapacity, got %v", err)
	}
}

func TestDispatch_UnknownPolicyRejectedBeforeParsing(t *testing.T) {
	_, err := Dispatch(context.Background(), Request{
		Capacity:  2,
		Policies:  []string{"BOGUS"},
		TraceText: "this is not a valid trace at all",
	})
	if !errors.Is(err, ErrUnknownPolicy) {
		fail(t, "expected ErrUnknownPolicy, got %v", err)
	}
}

func TestDispatch_TraceParseError(t *testing.T) {
	_, err := Dispatch(context.Background(), Request{Capacity: 2, TraceText: "GET\n"})
	if !errors.Is(err, ErrTraceParse) {
		fail(t, "expected ErrTraceParse, got %v", err)
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		fail(t, "expected *ParseError, got %T", err)
	}
	if len(parseErr.Lines) != 1 {
		fail(t, "expected one collected line error, got %v", parseErr.Lines)
	}
}

func TestDispatch_SparseModeDefaultSnapshotEvery(t *testing.T) {
	resp, err := Dispatch(context.Background(), Request{
		Capacity:  4,
		TraceText: sampleTrace,
		Animate:   false,
	})
	if err != nil {
		fail(t, "unexpected error: %v", err)
	}
	if len(resp.Results[0].Snapshots) == 0 {
		fail(t, "expected at least one snapshot in sparse mode")
	}
}

func TestDispatcher_RetainsBoundedHistory(t *testing.T) {
	d := NewDispatcher(2)
	for i := 0; i < 5; i++ {
		if _, err := d.Dispatch(context.Background(), Request{Capacity: 2, TraceText: sampleTrace}); err != nil {
			fail(t, "unexpected error on dispatch %d: %v", i, err)
		}
	}
	history := d.History()
	if len(history) != 2 {
		fail(t, "expected history bounded to 2, got %d", len(history))
	}
}

func TestDispatcher_HistoryUnaffectedByFailedDispatch(t *testing.T) {
	d := NewDispatcher(2)
	if _, err := d.Dispatch(context.Background(), Request{Capacity: 2, TraceText: sampleTrace}); err != nil {
		fail(t, "unexpected error: %v", err)
	}
	if _, err := d.Dispatch(context.Background(), Request{Capacity: 0, TraceText: sampleTrace}); err == nil {
		fail(t, "expected an error for invalid capacity")
	}
	if len(d.History()) != 1 {
		fail(t, "a failed dispatch should not be recorded in history, got %d entries", len(d.History()))
	}
}
