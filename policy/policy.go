// Package policy implements the four cache replacement policies this
// simulator supports — LRU, FIFO, LFU and ARC — behind one interface.
//
// Each policy is a closed-over container/list + map combination, the same
// intrusive-list-plus-index pattern the teacher uses for its own LRU/LFU/ARC
// implementations: O(1) splice-to-front, O(1) lookup by key, no iteration to
// find an eviction victim.
package policy

import (
	"errors"
	"fmt"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
)

// ErrUnknownPolicy is returned by New when name isn't one of the four
// supported policy identifiers.
var ErrUnknownPolicy = errors.New("unknown policy")

// ErrInvalidCapacity is returned by New when capacity is less than 1.
var ErrInvalidCapacity = errors.New("invalid capacity")

// Policy is the contract the driver uses to evolve a cache one operation at
// a time. It mirrors the five operations of the original specification:
// Get/Put mutate state, Snapshot/IsResident/DescribeMeta only observe it.
type Policy interface {
	// Get returns the stored value if key is resident, updating the
	// policy's recency/frequency bookkeeping. ARC's Get also returns a
	// value for a ghost (B1/B2) key, which it promotes back into the main
	// cache; IsResident, sampled before Get, tells that apart from a true
	// hit. A key absent everywhere is reported as a miss.
	Get(key string) (value string, ok bool)
	// Put inserts or updates key. It returns the key evicted to make room,
	// if any; at most one key is evicted per call.
	Put(key, value string) (evictedKey string, evicted bool)
	// Snapshot returns all resident entries in the policy's display order.
	// It never mutates state.
	Snapshot() []cachesim.Entry
	// IsResident reports whether key is in the main cache, as observed
	// before the pending operation. It never mutates state.
	IsResident(key string) bool
	// DescribeMeta fills in the policy-specific fields of step (Freq for
	// LFU, Arc for ARC; left nil by policies with no auxiliary structure).
	DescribeMeta(step *cachesim.Step)
}

// Name identifies one of the four supported policies.
type Name string

const (
	LRU  Name = "LRU"
	FIFO Name = "FIFO"
	LFU  Name = "LFU"
	ARC  Name = "ARC"
)

// New constructs a fresh Policy instance of the given name and capacity.
// capacity must be >= 1. Each call returns an independent instance; the
// driver owns it exclusively for the lifetime of one simulation run.
func New(name Name, capacity int) (Policy, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be >= 1, got %d", ErrInvalidCapacity, capacity)
	}

	switch name {
	case LRU:
		return newLRU(capacity), nil
	case FIFO:
		return newFIFO(capacity), nil
	case LFU:
		return newLFU(capacity), nil
	case ARC:
		return newARC(capacity), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected LRU, FIFO, LFU or ARC)", ErrUnknownPolicy, name)
	}
}
