package policy

import (
	"container/list"
	"sort"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
)

// lfuItem is the payload of a bucket list node. Unlike LRU/FIFO, it carries
// its own frequency so a hit can find and detach it from its current
// bucket without the bucket being threaded through the call.
type lfuItem struct {
	key   string
	value string
	freq  int
}

// LFUCache discards the least-frequently-used entry first, breaking ties by
// recency within the tied frequency (LRU-within-bucket). buckets maps
// frequency to an ordered list (front = most-recently-touched at that
// frequency); minFreq is cached so eviction never scans for the minimum.
type LFUCache struct {
	capacity int
	minFreq  int
	buckets  map[int]*list.List
	items    map[string]*list.Element
}

var _ Policy = (*LFUCache)(nil)

func newLFU(capacity int) *LFUCache {
	return &LFUCache{
		capacity: capacity,
		minFreq:  1,
		buckets:  make(map[int]*list.List),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (p *LFUCache) bucket(freq int) *list.List {
	b, ok := p.buckets[freq]
	if !ok {
		b = list.New()
		p.buckets[freq] = b
	}
	return b
}

// promote moves an already-resident item from its current bucket to the
// next one up, maintaining minFreq. Shared by Get and Put-on-existing-key.
func (p *LFUCache) promote(el *list.Element) string {
	it := el.Value.(*lfuItem)
	oldFreq := it.freq
	oldBucket := p.buckets[oldFreq]
	oldBucket.Remove(el)
	if oldBucket.Len() == 0 {
		delete(p.buckets, oldFreq)
		if oldFreq == p.minFreq {
			p.minFreq = oldFreq + 1
		}
	}

	it.freq = oldFreq + 1
	newEl := p.bucket(it.freq).PushFront(it)
	p.items[it.key] = newEl
	return it.value
}

func (p *LFUCache) Get(key string) (string, bool) {
	el, ok := p.items[key]
	if !ok {
		return "", false
	}
	return p.promote(el), true
}

func (p *LFUCache) Put(key, value string) (string, bool) {
	if el, ok := p.items[key]; ok {
		el.Value.(*lfuItem).value = value
		p.promote(el)
		return "", false
	}

	var evictedKey string
	var evicted bool
	if len(p.items) >= p.capacity {
		victims := p.buckets[p.minFreq]
		back := victims.Back()
		victimItem := back.Value.(*lfuItem)
		evictedKey, evicted = victimItem.key, true
		delete(p.items, victimItem.key)
		victims.Remove(back)
		if victims.Len() == 0 {
			delete(p.buckets, p.minFreq)
		}
	}

	item := &lfuItem{key: key, value: value, freq: 1}
	p.items[key] = p.bucket(1).PushFront(item)
	p.minFreq = 1

	return evictedKey, evicted
}

// Snapshot orders entries by descending frequency, MRU-first within a
// frequency bucket: higher-value entries are shown first for display.
func (p *LFUCache) Snapshot() []cachesim.Entry {
	freqs := make([]int, 0, len(p.buckets))
	for f := range p.buckets {
		freqs = append(freqs, f)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(freqs)))

	result := make([]cachesim.Entry, 0, len(p.items))
	for _, f := range freqs {
		for el := p.buckets[f].Front(); el != nil; el = el.Next() {
			it := el.Value.(*lfuItem)
			result = append(result, cachesim.Entry{Key: it.key, Value: it.value})
		}
	}
	return result
}

func (p *LFUCache) IsResident(key string) bool {
	_, ok := p.items[key]
	return ok
}

// DescribeMeta reports the current frequency of every resident key.
func (p *LFUCache) DescribeMeta(step *cachesim.Step) {
	freq := make(map[string]int, len(p.items))
	for key, el := range p.items {
		freq[key] = el.Value.(*lfuItem).freq
	}
	step.Freq = freq
}
