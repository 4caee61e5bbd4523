package policy

import (
	"container/list"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
)

// fifoItem is the payload of an arrivalList node.
type fifoItem struct {
	key   string
	value string
}

// FIFOCache discards the oldest-inserted entry first, regardless of access
// pattern. arrivalList runs oldest-to-newest front-to-back. Unlike a plain
// queue, it is a container/list so Put on an existing key can update the
// value in place without disturbing arrival order.
type FIFOCache struct {
	capacity    int
	arrivalList *list.List
	items       map[string]*list.Element
}

var _ Policy = (*FIFOCache)(nil)

func newFIFO(capacity int) *FIFOCache {
	return &FIFOCache{
		capacity:    capacity,
		arrivalList: list.New(),
		items:       make(map[string]*list.Element, capacity),
	}
}

// Get looks up key without reordering the arrival queue.
func (p *FIFOCache) Get(key string) (string, bool) {
	el, ok := p.items[key]
	if !ok {
		return "", false
	}
	return el.Value.(*fifoItem).value, true
}

func (p *FIFOCache) Put(key, value string) (string, bool) {
	if el, ok := p.items[key]; ok {
		el.Value.(*fifoItem).value = value
		return "", false
	}

	var evictedKey string
	var evicted bool
	if p.arrivalList.Len() >= p.capacity {
		front := p.arrivalList.Front()
		evictedItem := front.Value.(*fifoItem)
		evictedKey, evicted = evictedItem.key, true
		delete(p.items, evictedItem.key)
		p.arrivalList.Remove(front)
	}

	p.items[key] = p.arrivalList.PushBack(&fifoItem{key: key, value: value})
	return evictedKey, evicted
}

func (p *FIFOCache) Snapshot() []cachesim.Entry {
	result := make([]cachesim.Entry, 0, p.arrivalList.Len())
	for el := p.arrivalList.Front(); el != nil; el = el.Next() {
		it := el.Value.(*fifoItem)
		result = append(result, cachesim.Entry{Key: it.key, Value: it.value})
	}
	return result
}

func (p *FIFOCache) IsResident(key string) bool {
	_, ok := p.items[key]
	return ok
}

// DescribeMeta is a no-op: FIFOCache has no auxiliary structure worth reporting.
func (p *FIFOCache) DescribeMeta(_ *cachesim.Step) {}
