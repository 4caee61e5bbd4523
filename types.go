package cachesim

import "encoding/json"

// Entry is a resident cache slot: an opaque key and the value stored under it.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// OpKind distinguishes a read from a write in a trace.
type OpKind int

const (
	// OpGet reads a key without inserting it.
	OpGet OpKind = iota
	// OpPut inserts or updates a key's value.
	OpPut
)

// String renders an OpKind the way it appears in trace text and step logs.
func (k OpKind) String() string {
	if k == OpPut {
		return "PUT"
	}
	return "GET"
}

// TraceOp is one operation from a parsed trace.
type TraceOp struct {
	Kind  OpKind
	Key   string
	Value string // empty for OpGet
}

// ArcMeta is the ARC-specific slice of a Step's metadata: copies of the four
// list contents (MRU first) and the current recency target p.
type ArcMeta struct {
	T1 []string `json:"T1"`
	T2 []string `json:"T2"`
	B1 []string `json:"B1"`
	B2 []string `json:"B2"`
	P  int      `json:"p"`
}

// Step is the immutable result of applying one trace operation. CacheSnapshot
// reflects policy state after the operation; Freq and Arc are populated only
// by the policies that have bucket/ghost-list metadata to report (LFU and ARC
// respectively) and are nil otherwise.
type Step struct {
	Index         int
	Op            OpKind
	Key           string
	Value         string
	Hit           bool
	Evicted       string
	EvictedOK     bool
	CacheSnapshot []Entry
	Freq          map[string]int
	Arc           *ArcMeta
}

// stepWire is the §6 wire shape: evicted is null rather than an empty
// string when nothing was evicted, and freq/arc_sets nest under "meta".
type stepWire struct {
	Index   int             `json:"index"`
	Op      string          `json:"op"`
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Hit     bool            `json:"hit"`
	Evicted *string         `json:"evicted"`
	Cache   []Entry         `json:"cache"`
	Meta    stepWireMeta    `json:"meta"`
}

type stepWireMeta struct {
	Freq    map[string]int `json:"freq,omitempty"`
	ArcSets *ArcMeta       `json:"arc_sets"`
}

// MarshalJSON renders Step per the host response contract of SPEC_FULL.md §6.
func (s Step) MarshalJSON() ([]byte, error) {
	wire := stepWire{
		Index: s.Index,
		Op:    s.Op.String(),
		Key:   s.Key,
		Value: s.Value,
		Hit:   s.Hit,
		Cache: s.CacheSnapshot,
		Meta: stepWireMeta{
			Freq:    s.Freq,
			ArcSets: s.Arc,
		},
	}
	if s.EvictedOK {
		wire.Evicted = &s.Evicted
	}
	if wire.Cache == nil {
		wire.Cache = []Entry{}
	}
	return json.Marshal(wire)
}

// Stats accumulates aggregate counters across a simulation run.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRatio returns Hits / (Hits + Misses), or 0 when no GET has been issued.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// MarshalJSON includes the derived hit_ratio alongside the raw counters.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Hits      uint64  `json:"hits"`
		Misses    uint64  `json:"misses"`
		HitRatio  float64 `json:"hit_ratio"`
		Evictions uint64  `json:"evictions"`
	}{
		Hits:      s.Hits,
		Misses:    s.Misses,
		HitRatio:  s.HitRatio(),
		Evictions: s.Evictions,
	})
}
